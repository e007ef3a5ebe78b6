package catalog

import (
	"cinenyc-booking/internal/data/entity"
)

// Fixtures returns the built-in catalog used when no catalog database is
// configured.
func Fixtures() (*Catalog, error) {
	return New(fixtureMovies, fixtureTheaters, fixtureShowtimes)
}

var fixtureMovies = []entity.Movie{
	{
		ID:          "m1",
		Title:       "Dune: Part Two",
		PosterURL:   "https://image.tmdb.org/t/p/original/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
		Rating:      "PG-13",
		Genres:      []string{"Sci-Fi", "Adventure"},
		Duration:    "2h 46m",
		Description: "Paul Atreides unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family. Facing a choice between the love of his life and the fate of the known universe.",
		ReleaseDate: "March 1, 2024",
		Director:    "Denis Villeneuve",
		Cast:        []string{"Timothée Chalamet", "Zendaya", "Rebecca Ferguson"},
		Popularity:  99,
	},
	{
		ID:          "m2",
		Title:       "Gladiator II",
		PosterURL:   "https://image.tmdb.org/t/p/original/2cxhvsyzoMUPjVxOpJpUpx.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/euYIwmwkmz95mnXvufEmbL6ovhZ.jpg",
		Rating:      "R",
		Genres:      []string{"Action", "Drama"},
		Duration:    "2h 28m",
		Description: "Years after witnessing the death of the revered hero Maximus, Lucius is forced to enter the Colosseum after his home is conquered by the tyrannical Emperors.",
		ReleaseDate: "November 22, 2024",
		Director:    "Ridley Scott",
		Cast:        []string{"Paul Mescal", "Pedro Pascal", "Denzel Washington"},
		Popularity:  94,
	},
	{
		ID:          "m3",
		Title:       "Wicked",
		PosterURL:   "https://image.tmdb.org/t/p/original/c5Tqxeo1UpBvnAc3csUm7j3y8qT.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/uX08S9H1vR8vS37vE6G6G6G6G6.jpg",
		Rating:      "PG",
		Genres:      []string{"Fantasy", "Musical"},
		Duration:    "2h 40m",
		Description: "After two decades as a beloved musical, Wicked makes its journey to the big screen as a spectacular, generation-defining cinematic event.",
		ReleaseDate: "November 22, 2024",
		Director:    "Jon M. Chu",
		Cast:        []string{"Cynthia Erivo", "Ariana Grande", "Jeff Goldblum"},
		Popularity:  96,
	},
	{
		ID:          "m4",
		Title:       "Deadpool & Wolverine",
		PosterURL:   "https://image.tmdb.org/t/p/original/8cdWjvZQUExUUTzyp4t6EDMubfO.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/9l1eZiJHm54wdveE25xXl0r2uXp.jpg",
		Rating:      "R",
		Genres:      []string{"Action", "Comedy"},
		Duration:    "2h 8m",
		Description: "Wade Wilson's days as Deadpool are behind him until his homeworld faces an existential threat, forcing him to suit up with a very reluctant Wolverine.",
		ReleaseDate: "July 26, 2024",
		Director:    "Shawn Levy",
		Cast:        []string{"Ryan Reynolds", "Hugh Jackman"},
		Popularity:  98,
	},
	{
		ID:          "m5",
		Title:       "The Room Next Door",
		PosterURL:   "https://image.tmdb.org/t/p/original/r5eQ0sYhT5H5f5T5T5T5T5T5T5.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/p6O8NETsO2HnaUe3vI6C0ARvmo.jpg",
		Rating:      "R",
		Genres:      []string{"Drama"},
		Duration:    "1h 47m",
		Description: "Ingrid and Martha were close friends in their youth. Life separated them, but circumstances bring them back together in this poignant drama.",
		ReleaseDate: "October 18, 2024",
		Director:    "Pedro Almodóvar",
		Cast:        []string{"Julianne Moore", "Tilda Swinton"},
		Popularity:  82,
	},
	{
		ID:          "m6",
		Title:       "Joker: Folie à Deux",
		PosterURL:   "https://image.tmdb.org/t/p/original/aciP8KmS3vS1qS79InoNfSTSU4u.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/uS1S1O1S1O1S1O1S1O1S1O1S1O.jpg",
		Rating:      "R",
		Genres:      []string{"Drama", "Crime", "Musical"},
		Duration:    "2h 18m",
		Description: "Failed comedian Arthur Fleck meets the love of his life, Harley Quinn, while incarcerated at Arkham State Hospital. Upon his release, the two of them embark on a doomed romantic misadventure.",
		ReleaseDate: "October 4, 2024",
		Director:    "Todd Phillips",
		Cast:        []string{"Joaquin Phoenix", "Lady Gaga", "Brendan Gleeson"},
		Popularity:  88,
	},
	{
		ID:          "m7",
		Title:       "Beetlejuice Beetlejuice",
		PosterURL:   "https://image.tmdb.org/t/p/original/kKgQzkUCnSfsfgIjgfgJuRy4mRqi.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/9B1S1O1S1O1S1O1S1O1S1O1S1O.jpg",
		Rating:      "PG-13",
		Genres:      []string{"Comedy", "Fantasy"},
		Duration:    "1h 44m",
		Description: "After an unexpected family tragedy, three generations of the Deetz family return home to Winter River. Still haunted by Beetlejuice, Lydia's life is turned upside down when her rebellious teenage daughter, Astrid, discovers the mysterious model of the town in the attic.",
		ReleaseDate: "September 6, 2024",
		Director:    "Tim Burton",
		Cast:        []string{"Michael Keaton", "Winona Ryder", "Jenna Ortega"},
		Popularity:  92,
	},
	{
		ID:          "m8",
		Title:       "Moana 2",
		PosterURL:   "https://image.tmdb.org/t/p/original/4YZpssx684mK2M4l0v5T5T5T5T5.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/tE1S1O1S1O1S1O1S1O1S1O1S1O.jpg",
		Rating:      "PG",
		Genres:      []string{"Animation", "Adventure", "Family"},
		Duration:    "1h 40m",
		Description: "After receiving an unexpected call from her wayfinding ancestors, Moana must journey to the far seas of Oceania and into dangerous, long-lost waters for an adventure unlike anything she's ever faced.",
		ReleaseDate: "November 27, 2024",
		Director:    "David G. Derrick Jr.",
		Cast:        []string{"Auliʻi Cravalho", "Dwayne Johnson"},
		Popularity:  97,
	},
	{
		ID:          "m9",
		Title:       "Sonic the Hedgehog 3",
		PosterURL:   "https://image.tmdb.org/t/p/original/d8RSTun7Hpk97fm6TryM00pXPvC.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/zOpe1S1O1S1O1S1O1S1O1S1O1S1O.jpg",
		Rating:      "PG",
		Genres:      []string{"Action", "Adventure", "Family"},
		Duration:    "1h 50m",
		Description: "Sonic, Knuckles, and Tails reunite against a powerful new adversary, Shadow, a mysterious villain with powers unlike anything they have faced before. With their abilities outmatched in every way, Team Sonic must seek out an unlikely alliance.",
		ReleaseDate: "December 20, 2024",
		Director:    "Jeff Fowler",
		Cast:        []string{"Ben Schwartz", "Jim Carrey", "Keanu Reeves"},
		Popularity:  95,
	},
	{
		ID:          "m10",
		Title:       "Nosferatu",
		PosterURL:   "https://image.tmdb.org/t/p/original/56S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/n5S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		Rating:      "R",
		Genres:      []string{"Horror", "Fantasy"},
		Duration:    "2h 12m",
		Description: "A gothic tale of obsession between a haunted young woman and the terrifying vampire infatuated with her, causing untold horror in its wake.",
		ReleaseDate: "December 25, 2024",
		Director:    "Robert Eggers",
		Cast:        []string{"Bill Skarsgård", "Nicholas Hoult", "Lily-Rose Depp"},
		Popularity:  90,
	},
	{
		ID:          "m11",
		Title:       "A Real Pain",
		PosterURL:   "https://image.tmdb.org/t/p/original/j0S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/p0S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		Rating:      "R",
		Genres:      []string{"Comedy", "Drama"},
		Duration:    "1h 30m",
		Description: "Mismatched cousins David and Benji reunite for a tour through Poland to honor their beloved grandmother. The adventure takes a turn when the pair's old tensions resurface against the backdrop of their family history.",
		ReleaseDate: "November 1, 2024",
		Director:    "Jesse Eisenberg",
		Cast:        []string{"Jesse Eisenberg", "Kieran Culkin"},
		Popularity:  85,
	},
	{
		ID:          "m12",
		Title:       "Conclave",
		PosterURL:   "https://image.tmdb.org/t/p/original/c0S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/r0S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		Rating:      "PG",
		Genres:      []string{"Thriller"},
		Duration:    "2h 0m",
		Description: "Cardinal Lawrence is tasked with leading one of the world's most secretive and ancient events, selecting a new Pope, where he finds himself at the center of a conspiracy that could shake the very foundation of the Church.",
		ReleaseDate: "October 25, 2024",
		Director:    "Edward Berger",
		Cast:        []string{"Ralph Fiennes", "Stanley Tucci", "John Lithgow"},
		Popularity:  84,
	},
	{
		ID:          "m13",
		Title:       "Anora",
		PosterURL:   "https://image.tmdb.org/t/p/original/p0S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/a0S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		Rating:      "R",
		Genres:      []string{"Comedy", "Drama", "Romance"},
		Duration:    "2h 19m",
		Description: "Anora, a young sex worker from Brooklyn, gets her chance at a Cinderella story when she meets and impulsively marries the son of an oligarch. Once the news reaches Russia, her fairytale is threatened.",
		ReleaseDate: "October 18, 2024",
		Director:    "Sean Baker",
		Cast:        []string{"Mikey Madison", "Mark Eydelshteyn", "Yura Borisov"},
		Popularity:  89,
	},
	{
		ID:          "m14",
		Title:       "A Complete Unknown",
		PosterURL:   "https://image.tmdb.org/t/p/original/t0S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		BannerURL:   "https://image.tmdb.org/t/p/original/d0S1O1S1O1S1O1S1O1S1O1S1O1S.jpg",
		Rating:      "PG-13",
		Genres:      []string{"Drama", "Music"},
		Duration:    "2h 20m",
		Description: "At the Newport Folk Festival in 1965, a young Bob Dylan shakes up the folk music scene by going electric, defining a generation and changing music forever.",
		ReleaseDate: "December 25, 2024",
		Director:    "James Mangold",
		Cast:        []string{"Timothée Chalamet", "Edward Norton", "Elle Fanning"},
		Popularity:  91,
	},
}

var fixtureTheaters = []entity.Theater{
	{
		ID:        "t1",
		Name:      "CineNYC Flagship - Times Square",
		Address:   "1501 Broadway, New York, NY 10036",
		Distance:  "0.2 miles",
		Amenities: []string{"IMAX Laser", "Dolby Atmos", "Signature Recliners"},
	},
	{
		ID:        "t3",
		Name:      "CineNYC Boutique - Brooklyn Heights",
		Address:   "188 Montague St, Brooklyn, NY 11201",
		Distance:  "3.1 miles",
		Amenities: []string{"Artisanal Bar", "Vintage Decor", "Reserved Seating"},
	},
}

var fixtureShowtimes = []entity.Showtime{
	{ID: "s1", TheaterID: "t1", MovieID: "m1", Time: "12:45 PM", Format: entity.FormatIMAX, Price: 12.00},
	{ID: "s2", TheaterID: "t1", MovieID: "m1", Time: "4:15 PM", Format: entity.FormatIMAX, Price: 12.00},
	{ID: "s3", TheaterID: "t1", MovieID: "m1", Time: "7:45 PM", Format: entity.FormatIMAX, Price: 12.00},
	{ID: "s4", TheaterID: "t1", MovieID: "m2", Time: "3:00 PM", Format: entity.FormatDolby, Price: 12.00},
	{ID: "s5", TheaterID: "t3", MovieID: "m2", Time: "7:30 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s6", TheaterID: "t3", MovieID: "m3", Time: "6:30 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s7", TheaterID: "t3", MovieID: "m4", Time: "9:15 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s8", TheaterID: "t1", MovieID: "m5", Time: "8:30 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s9", TheaterID: "t1", MovieID: "m6", Time: "7:00 PM", Format: entity.FormatIMAX, Price: 12.00},
	{ID: "s10", TheaterID: "t1", MovieID: "m7", Time: "1:15 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s11", TheaterID: "t3", MovieID: "m8", Time: "12:00 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s12", TheaterID: "t3", MovieID: "m9", Time: "2:45 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s13", TheaterID: "t1", MovieID: "m10", Time: "10:30 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s14", TheaterID: "t3", MovieID: "m11", Time: "5:30 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s15", TheaterID: "t1", MovieID: "m13", Time: "5:00 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s16", TheaterID: "t3", MovieID: "m13", Time: "8:00 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s17", TheaterID: "t1", MovieID: "m14", Time: "2:30 PM", Format: entity.FormatStandard, Price: 12.00},
	{ID: "s18", TheaterID: "t1", MovieID: "m12", Time: "4:45 PM", Format: entity.FormatStandard, Price: 12.00},
}
