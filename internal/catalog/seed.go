// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package catalog

// Seed returns the built-in curated catalog used when no catalog file is
// configured. The rating set is small but shaped so that collaborative
// filtering produces output for the demo users: users 1-3 share taste,
// user 4 is anti-correlated with user 1, user 5 overlaps with nobody.
func Seed() *Store {
	s, err := NewStore(seedMovies(), seedRatings())
	if err != nil {
		// The seed data is compiled in; a constructor error here is a bug.
		panic("catalog: invalid seed data: " + err.Error())
	}
	return s
}

func seedMovies() []Movie {
	return []Movie{
		{
			ID: 1, Title: "Neon Dreams", Year: 2024,
			Genres:   []string{"Sci-Fi", "Thriller"},
			Director: "Alex Chen",
			Cast:     []string{"Emma Stone", "Oscar Isaac", "Tilda Swinton"},
			Rating:   8.7, Votes: 124503, Runtime: 142,
			Description: "In a cyberpunk future, a hacker discovers a conspiracy that threatens the fabric of digital reality itself.",
		},
		{
			ID: 2, Title: "Shadow's Edge", Year: 2023,
			Genres:   []string{"Action", "Thriller"},
			Director: "Maria Rodriguez",
			Cast:     []string{"Idris Elba", "Charlize Theron", "John Boyega"},
			Rating:   8.2, Votes: 98211, Runtime: 118,
			Description: "A former assassin must protect a key witness while being hunted by his former employers through the dark streets of Prague.",
		},
		{
			ID: 3, Title: "Quantum Realm", Year: 2024,
			Genres:   []string{"Sci-Fi", "Adventure"},
			Director: "Christopher Nolan",
			Cast:     []string{"Matthew McConaughey", "Anne Hathaway", "Michael Caine"},
			Rating:   9.1, Votes: 201376, Runtime: 165,
			Description: "When parallel dimensions begin colliding, a team of scientists races to prevent the destruction of all realities.",
		},
		{
			ID: 4, Title: "The Last Guardian", Year: 2023,
			Genres:   []string{"Fantasy", "Adventure"},
			Director: "Peter Jackson",
			Cast:     []string{"Saoirse Ronan", "Benedict Cumberbatch", "Ian McKellen"},
			Rating:   8.9, Votes: 154882, Runtime: 156,
			Description: "In a world where magic is fading, the last remaining guardian must train an unlikely hero to save their realm.",
		},
		{
			ID: 5, Title: "Ocean's Heart", Year: 2024,
			Genres:   []string{"Romance", "Drama"},
			Director: "Greta Gerwig",
			Cast:     []string{"Timothée Chalamet", "Zendaya", "Laura Dern"},
			Rating:   8.4, Votes: 87654, Runtime: 127,
			Description: "A marine biologist and a lighthouse keeper find love while working to save a dying coral reef ecosystem.",
		},
		{
			ID: 6, Title: "Midnight Runner", Year: 2023,
			Genres:   []string{"Action", "Thriller"},
			Director: "Denis Villeneuve",
			Cast:     []string{"Ryan Gosling", "Ana de Armas", "Oscar Isaac"},
			Rating:   8.0, Votes: 76102, Runtime: 134,
			Description: "A courier with a dark past must deliver a mysterious package while evading both law enforcement and criminal organizations.",
		},
		{
			ID: 7, Title: "The Dark Knight", Year: 2008,
			Genres:   []string{"Action", "Crime", "Drama"},
			Director: "Christopher Nolan",
			Cast:     []string{"Christian Bale", "Heath Ledger", "Aaron Eckhart"},
			Rating:   9.0, Votes: 2734625, Runtime: 152,
			Description: "When the menace known as the Joker wreaks havoc on Gotham, Batman must accept one of the greatest psychological tests of his ability to fight injustice.",
		},
		{
			ID: 8, Title: "Interstellar", Year: 2014,
			Genres:   []string{"Adventure", "Drama", "Sci-Fi"},
			Director: "Christopher Nolan",
			Cast:     []string{"Matthew McConaughey", "Anne Hathaway", "Jessica Chastain"},
			Rating:   8.6, Votes: 2145310, Runtime: 169,
			Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		},
		{
			ID: 9, Title: "Inception", Year: 2010,
			Genres:   []string{"Action", "Sci-Fi", "Thriller"},
			Director: "Christopher Nolan",
			Cast:     []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"},
			Rating:   8.8, Votes: 2412215, Runtime: 148,
			Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
		},
		{
			ID: 10, Title: "The Shawshank Redemption", Year: 1994,
			Genres:   []string{"Drama"},
			Director: "Frank Darabont",
			Cast:     []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"},
			Rating:   9.3, Votes: 2817342, Runtime: 142,
			Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		},
		{
			ID: 11, Title: "Parasite", Year: 2019,
			Genres:   []string{"Comedy", "Drama", "Thriller"},
			Director: "Bong Joon-ho",
			Cast:     []string{"Song Kang-ho", "Lee Sun-kyun", "Cho Yeo-jeong"},
			Rating:   8.5, Votes: 912467, Runtime: 132,
			Description: "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
		},
		{
			ID: 12, Title: "Dune", Year: 2021,
			Genres:   []string{"Adventure", "Sci-Fi"},
			Director: "Denis Villeneuve",
			Cast:     []string{"Timothée Chalamet", "Rebecca Ferguson", "Oscar Isaac"},
			Rating:   8.0, Votes: 789214, Runtime: 155,
			Description: "A noble family becomes embroiled in a war for control over the galaxy's most valuable asset while its heir becomes troubled by visions of a dark future.",
		},
	}
}

func seedRatings() []UserRating {
	return []UserRating{
		{UserID: 1, MovieID: 1, Rating: 5},
		{UserID: 1, MovieID: 2, Rating: 4},
		{UserID: 1, MovieID: 3, Rating: 5},
		{UserID: 1, MovieID: 5, Rating: 2},
		{UserID: 1, MovieID: 7, Rating: 5},

		{UserID: 2, MovieID: 1, Rating: 5},
		{UserID: 2, MovieID: 2, Rating: 4},
		{UserID: 2, MovieID: 3, Rating: 5},
		{UserID: 2, MovieID: 5, Rating: 2},
		{UserID: 2, MovieID: 7, Rating: 5},
		{UserID: 2, MovieID: 8, Rating: 5},
		{UserID: 2, MovieID: 9, Rating: 4},

		{UserID: 3, MovieID: 1, Rating: 4},
		{UserID: 3, MovieID: 2, Rating: 5},
		{UserID: 3, MovieID: 3, Rating: 4},
		{UserID: 3, MovieID: 5, Rating: 1},
		{UserID: 3, MovieID: 8, Rating: 4},
		{UserID: 3, MovieID: 10, Rating: 5},

		{UserID: 4, MovieID: 1, Rating: 1},
		{UserID: 4, MovieID: 2, Rating: 2},
		{UserID: 4, MovieID: 3, Rating: 1},
		{UserID: 4, MovieID: 5, Rating: 5},
		{UserID: 4, MovieID: 6, Rating: 5},

		{UserID: 5, MovieID: 4, Rating: 4},
		{UserID: 5, MovieID: 6, Rating: 4},
		{UserID: 5, MovieID: 10, Rating: 4},
	}
}
