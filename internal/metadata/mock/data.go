package mock

import "github.com/reelpick/reelpick/internal/metadata/tmdb"

type mockMovie struct {
	movie     tmdb.MovieResult
	providers []int
	keywords  []int
	trailer   string
	cast      []tmdb.CastMember
}

func ptr(s string) *string { return &s }

var mockGenres = []tmdb.Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 18, Name: "Drama"},
	{ID: 878, Name: "Science Fiction"},
	{ID: 53, Name: "Thriller"},
}

var mockKeywords = []tmdb.Keyword{
	{ID: 4379, Name: "time travel"},
	{ID: 9882, Name: "space"},
	{ID: 310, Name: "artificial intelligence"},
	{ID: 10183, Name: "independent film"},
	{ID: 9715, Name: "superhero"},
	{ID: 818, Name: "based on novel or book"},
}

var mockProviders = map[int]tmdb.WatchProvider{
	8:   {ProviderID: 8, ProviderName: "Netflix", LogoPath: "/pbpMk2JmcoNnQwx5JGpXngfoWtp.jpg"},
	9:   {ProviderID: 9, ProviderName: "Amazon Prime Video", LogoPath: "/dQeAar5H991VYporEjUspolDarG.jpg"},
	15:  {ProviderID: 15, ProviderName: "Hulu", LogoPath: "/bxBlRPEPpMVDc4jMhSrTf2339DW.jpg"},
	337: {ProviderID: 337, ProviderName: "Disney Plus", LogoPath: "/97yvRBw1GzX7fXprcF80er19ot.jpg"},
	386: {ProviderID: 386, ProviderName: "Peacock", LogoPath: "/2aGrp1xw3qhwCYvNGAJZPdjfeeX.jpg"},
	531: {ProviderID: 531, ProviderName: "Paramount Plus", LogoPath: "/h5DcR0J2EESLitnhR8xLG1QymTE.jpg"},
}

var mockMovies = []mockMovie{
	{
		movie: tmdb.MovieResult{
			ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", VoteAverage: 8.2, Runtime: 136,
			Overview:   "A hacker learns that the world he lives in is a simulation.",
			PosterPath: ptr("/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"), GenreIDs: []int{28, 878},
		},
		providers: []int{531, 9},
		keywords:  []int{310},
		trailer:   "sample-matrix",
		cast: []tmdb.CastMember{
			{ID: 6384, Name: "Keanu Reeves", Character: "Neo", Order: 0, ProfilePath: ptr("/4D0PpNI0kmP58hgrwGC3wCjxhnm.jpg")},
			{ID: 2975, Name: "Laurence Fishburne", Character: "Morpheus", Order: 1, ProfilePath: ptr("/8suOhUmPbfKqDQ17jQ1Gy0mI3P4.jpg")},
			{ID: 530, Name: "Carrie-Anne Moss", Character: "Trinity", Order: 2, ProfilePath: ptr("/xD4jTA3KmVp5Rq3aHcymL9DUGjD.jpg")},
			{ID: 1331, Name: "Hugo Weaving", Character: "Agent Smith", Order: 3, ProfilePath: ptr("/lSxSHQZDhmHfT8Ld3eVpRxIgNLb.jpg")},
		},
	},
	{
		movie: tmdb.MovieResult{
			ID: 157336, Title: "Interstellar", ReleaseDate: "2014-11-05", VoteAverage: 8.4, Runtime: 169,
			Overview:   "Explorers travel through a wormhole in search of a new home for humanity.",
			PosterPath: ptr("/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg"), GenreIDs: []int{12, 18, 878},
		},
		providers: []int{386},
		keywords:  []int{9882, 4379},
		trailer:   "sample-interstellar",
		cast: []tmdb.CastMember{
			{ID: 10297, Name: "Matthew McConaughey", Character: "Cooper", ProfilePath: ptr("/lCySuYjhXix3FzQdS4oceDDrXKI.jpg")},
			{ID: 1813, Name: "Anne Hathaway", Character: "Brand", ProfilePath: ptr("/s6tflSD20MGz04ZR2R1lZvhmC4Y.jpg")},
		},
	},
	{
		movie: tmdb.MovieResult{
			ID: 105, Title: "Back to the Future", ReleaseDate: "1985-07-03", VoteAverage: 8.3, Runtime: 116,
			Overview:   "A teenager is accidentally sent thirty years into the past.",
			PosterPath: ptr("/fNOH9f1aA7XRTzl1sAOx9iF553Q.jpg"), GenreIDs: []int{12, 35, 878},
		},
		providers: []int{8},
		keywords:  []int{4379},
		trailer:   "sample-bttf",
		cast: []tmdb.CastMember{
			{ID: 521, Name: "Michael J. Fox", Character: "Marty McFly", ProfilePath: ptr("/2JB4FMgQmnhbBlQ4SxWFN9EIVDi.jpg")},
			{ID: 1062, Name: "Christopher Lloyd", Character: "Doc Brown", ProfilePath: nil},
			{ID: 1063, Name: "Lea Thompson", Character: "Lorraine Baines", ProfilePath: ptr("/jcNGBY2ZHETYQ5TSKCU9hHCtjLL.jpg")},
		},
	},
	{
		movie: tmdb.MovieResult{
			ID: 862, Title: "Toy Story", ReleaseDate: "1995-10-30", VoteAverage: 8.0, Runtime: 81,
			Overview:   "A cowboy doll feels threatened when a space ranger joins the toy box.",
			PosterPath: ptr("/uXDfjJbdP4ijW5hWSBrPrlKpxab.jpg"), GenreIDs: []int{16, 12, 35},
		},
		providers: []int{337},
		trailer:   "sample-toystory",
		cast: []tmdb.CastMember{
			{ID: 31, Name: "Tom Hanks", Character: "Woody (voice)", ProfilePath: ptr("/xndWFsBlClOJFRdhSt4NBwiPq2o.jpg")},
			{ID: 12898, Name: "Tim Allen", Character: "Buzz Lightyear (voice)", ProfilePath: ptr("/uX2xVf6pMmPepxnvFWyBtjexzgY.jpg")},
		},
	},
	{
		movie: tmdb.MovieResult{
			ID: 27205, Title: "Inception", ReleaseDate: "2010-07-15", VoteAverage: 8.4, Runtime: 148,
			Overview:   "A thief who steals secrets through dreams is offered a chance at redemption.",
			PosterPath: ptr("/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg"), GenreIDs: []int{28, 878, 12},
		},
		providers: []int{15, 9},
		trailer:   "sample-inception",
		cast: []tmdb.CastMember{
			{ID: 6193, Name: "Leonardo DiCaprio", Character: "Cobb", ProfilePath: ptr("/wo2hJpn04vbtmh0B9utCFdsQhxM.jpg")},
		},
	},
	{
		movie: tmdb.MovieResult{
			ID: 299534, Title: "Avengers: Endgame", ReleaseDate: "2019-04-24", VoteAverage: 8.3, Runtime: 181,
			Overview:   "The remaining Avengers assemble once more to undo Thanos' actions.",
			PosterPath: ptr("/or06FN3Dka5tukK1e9sl16pB3iy.jpg"), GenreIDs: []int{12, 878, 28},
		},
		providers: []int{337},
		keywords:  []int{9715, 4379},
		trailer:   "sample-endgame",
	},
	{
		movie: tmdb.MovieResult{
			ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15", VoteAverage: 8.4, Runtime: 139,
			Overview:   "An insomniac office worker forms an underground fight club.",
			PosterPath: ptr("/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"), GenreIDs: []int{18, 53},
		},
		providers: []int{531},
		keywords:  []int{818},
	},
	{
		movie: tmdb.MovieResult{
			ID: 13, Title: "Forrest Gump", ReleaseDate: "1994-06-23", VoteAverage: 8.5, Runtime: 142,
			Overview:   "A man with a low IQ witnesses and influences defining moments of history.",
			PosterPath: ptr("/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg"), GenreIDs: []int{35, 18},
		},
		providers: []int{9, 386},
		keywords:  []int{818},
		trailer:   "sample-gump",
		cast: []tmdb.CastMember{
			{ID: 31, Name: "Tom Hanks", Character: "Forrest Gump", ProfilePath: ptr("/xndWFsBlClOJFRdhSt4NBwiPq2o.jpg")},
			{ID: 32, Name: "Robin Wright", Character: "Jenny Curran", ProfilePath: ptr("/xQMbYumqMzyLCQXGaSJrC0wMKNT.jpg")},
		},
	},
}
