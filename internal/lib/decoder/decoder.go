package decoder

import (
	"net/url"

	"github.com/gorilla/schema"
)

type URLDecoder struct {
	decoder *schema.Decoder
}

// New returns a query string decoder. Unknown keys are ignored.
func New() *URLDecoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.SetAliasTag("schema")
	return &URLDecoder{decoder: d}
}

func (d *URLDecoder) Decode(dst any, src url.Values) error {
	return d.decoder.Decode(dst, src)
}
