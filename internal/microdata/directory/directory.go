// Package directory resolves country codes and region ids to display names.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/storefront-seo/microdata/internal/microdata/model"
)

var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrUnknownRegion  = errors.New("unknown region")
)

// Directory names countries through the CLDR data of golang.org/x/text and
// regions through a table of region id to name.
type Directory struct {
	countries display.Namer
	regions   map[string]string
}

// New returns a Directory naming countries in the given locale, for example
// "en_US" or "fr-FR". An unparsable locale falls back to English.
func New(locale string, regions map[string]string) *Directory {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		tag = language.English
	}
	if regions == nil {
		regions = map[string]string{}
	}
	return &Directory{
		countries: display.Regions(tag),
		regions:   regions,
	}
}

func (d *Directory) CountryName(ctx context.Context, countryCode string) (string, error) {
	region, err := language.ParseRegion(strings.TrimSpace(countryCode))
	if err != nil || !region.IsCountry() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, countryCode)
	}
	name := d.countries.Name(region)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, countryCode)
	}
	return name, nil
}

func (d *Directory) RegionName(ctx context.Context, regionID string) (string, error) {
	name, ok := d.regions[strings.TrimSpace(regionID)]
	if !ok || name == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, regionID)
	}
	return name, nil
}

var _ model.Directory = (*Directory)(nil)
