package fields

type Genre string

const (
	GenreDrama  Genre = "drama"
	GenreAction Genre = "action"
	GenreTerror Genre = "terror"
)

var Genres = []Genre{GenreDrama, GenreAction, GenreTerror}

func (g Genre) IsValid() bool {
	for _, v := range Genres {
		if g == v {
			return true
		}
	}
	return false
}

func (g Genre) String() string {
	return string(g)
}
