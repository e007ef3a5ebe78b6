package entity

// ScreenFormat is the presentation format of a showtime.
type ScreenFormat string

const (
	FormatStandard ScreenFormat = "2D"
	Format3D       ScreenFormat = "3D"
	FormatIMAX     ScreenFormat = "IMAX"
	FormatDolby    ScreenFormat = "Dolby Cinema"
)

// ValidFormat reports whether f is one of the fixed format tags.
func ValidFormat(f ScreenFormat) bool {
	switch f {
	case FormatStandard, Format3D, FormatIMAX, FormatDolby:
		return true
	}
	return false
}

// Showtime references a movie and a theater by identifier.
type Showtime struct {
	ID        string       `db:"id"`
	TheaterID string       `db:"theater_id"`
	MovieID   string       `db:"movie_id"`
	Time      string       `db:"show_time"`
	Format    ScreenFormat `db:"format"`
	Price     float64      `db:"price"`
}
