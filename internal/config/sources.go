package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// SourcesFile is the TOML layout accepted by --sources-file:
//
//	[[source]]
//	url = "https://einsteinathome.org/userw.php?id=1041241"
type SourcesFile struct {
	Sources []Source `toml:"source"`
}

// Source is a single BOINC userw endpoint.
type Source struct {
	URL string `toml:"url"`
}

// LoadSourcesFile decodes a TOML sources file and returns its URLs in file order.
func LoadSourcesFile(path string) ([]string, error) {
	var file SourcesFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode sources file %s: %w", path, err)
	}
	urls := make([]string, 0, len(file.Sources))
	for _, src := range file.Sources {
		if u := strings.TrimSpace(src.URL); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return nil, errors.New("sources file lists no urls")
	}
	return urls, nil
}
