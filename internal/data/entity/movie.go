package entity

// Movie is an immutable catalog entry loaded from fixtures or the catalog
// database at startup.
type Movie struct {
	ID          string   `db:"id"`
	Title       string   `db:"title"`
	PosterURL   string   `db:"poster_url"`
	BannerURL   string   `db:"banner_url"`
	Rating      string   `db:"rating"`
	Genres      []string `db:"genres"`
	Duration    string   `db:"duration"`
	Description string   `db:"description"`
	ReleaseDate string   `db:"release_date"`
	Director    string   `db:"director"`
	Cast        []string `db:"cast_members"`
	Popularity  int      `db:"popularity"`
}
