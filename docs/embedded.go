package docs

import (
	_ "embed"
)

//go:embed openapi.yml
var spec []byte

func GetSpecBytes() []byte {
	return spec
}
