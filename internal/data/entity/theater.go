package entity

type Theater struct {
	ID        string   `db:"id"`
	Name      string   `db:"name"`
	Address   string   `db:"address"`
	Distance  string   `db:"distance"`
	Amenities []string `db:"amenities"`
}
