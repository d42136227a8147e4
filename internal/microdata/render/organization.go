package render

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	errx "github.com/storefront-seo/microdata/internal/core/error"
	"github.com/storefront-seo/microdata/internal/microdata/model"
	"github.com/storefront-seo/microdata/internal/microdata/schema"
	logx "github.com/storefront-seo/microdata/pkg/logger"
)

// LogoBlock is the layout block whose presence enables the organization data.
const LogoBlock = "logo"

// Store configuration paths.
const (
	PathStoreName    = "general/store_information/name"
	PathStorePhone   = "general/store_information/phone"
	PathMerchantVAT  = "general/store_information/merchant_vat_number"
	PathStreetLine1  = "general/store_information/street_line1"
	PathStreetLine2  = "general/store_information/street_line2"
	PathCity         = "general/store_information/city"
	PathPostcode     = "general/store_information/postcode"
	PathRegionID     = "general/store_information/region_id"
	PathCountryID    = "general/store_information/country_id"
	PathSenderEmail  = "trans_email/ident_general/email"
	PathAllowCountry = "general/country/allow"
	PathLocale       = "general/locale/code"
)

// Custom variable codes.
const (
	VarAlternateName        = "structured-data-alternateName"
	VarLegalName            = "structured-data-legalName"
	VarDescription          = "structured-data-description"
	VarImage                = "structured-data-image"
	VarISO6523Code          = "structured-data-iso6523Code"
	VarDUNS                 = "structured-data-duns"
	VarGlobalLocationNumber = "structured-data-globalLocationNumber"
	VarFoundingDate         = "structured-data-foundingDate"
	VarEmployeesMin         = "structured-data-fnumberOfEmployees-minValue"
	VarEmployeesMax         = "structured-data-fnumberOfEmployees-maxValue"
	VarSameAs               = "structured-data-sameAs"
	VarAggregateRatingURL   = "structured-data-aggregateRating-url"
)

const organizationCacheLifetime = 24 * time.Hour

// Organization renders the OnlineStore document shown alongside the store logo.
type Organization struct {
	page      Page
	config    model.ConfigReader
	variables model.VariableStore
	directory model.Directory
	log       zerolog.Logger
}

func NewOrganization(page Page, config model.ConfigReader, variables model.VariableStore, directory model.Directory) *Organization {
	return &Organization{
		page:      page,
		config:    config,
		variables: variables,
		directory: directory,
		log:       logx.Component("organization"),
	}
}

// Display reports whether the layout contains the logo block.
func (r *Organization) Display() bool {
	_, ok := r.logo()
	return ok
}

// CacheKey identifies the rendered document. It only varies by store.
func (r *Organization) CacheKey() string {
	return "microdata_logo:" + r.page.Store.ID
}

func (r *Organization) CacheLifetime() time.Duration {
	return organizationCacheLifetime
}

func (r *Organization) logo() (model.Block, bool) {
	if r.page.Layout == nil {
		return nil, false
	}
	block, ok := r.page.Layout.Block(LogoBlock)
	if !ok || block == nil {
		return nil, false
	}
	return block, true
}

func (r *Organization) RenderJSON(ctx context.Context) (string, error) {
	logo, ok := r.logo()
	if !ok {
		return "", nil
	}

	email := r.configValue(PathSenderEmail)
	telephone := r.configValue(PathStorePhone)
	vat := r.configValue(PathMerchantVAT)
	allowed := r.configValue(PathAllowCountry)

	var countries []string
	if allowed != "" {
		for _, code := range strings.Split(allowed, ",") {
			if name := r.countryName(ctx, code); name != "" {
				countries = append(countries, name)
			}
		}
	}

	doc := schema.OnlineStore{
		Context:              schema.Context,
		Type:                 "OnlineStore",
		Name:                 r.configValue(PathStoreName),
		AlternateName:        r.variable(ctx, VarAlternateName),
		LegalName:            r.variable(ctx, VarLegalName),
		Description:          r.variable(ctx, VarDescription),
		URL:                  r.page.Store.BaseURL,
		Logo:                 logo.LogoSrc(),
		Image:                r.variable(ctx, VarImage),
		Email:                email,
		Telephone:            telephone,
		VatID:                vat,
		TaxID:                vat,
		ISO6523Code:          r.variable(ctx, VarISO6523Code),
		DUNS:                 r.variable(ctx, VarDUNS),
		GlobalLocationNumber: r.variable(ctx, VarGlobalLocationNumber),
		FoundingDate:         r.variable(ctx, VarFoundingDate),
		ContactPoint: schema.ContactPoint{
			Type:              "ContactPoint",
			ContactType:       "customer service",
			Telephone:         telephone,
			Email:             email,
			AreaServed:        countries,
			AvailableLanguage: r.configValue(PathLocale),
		},
		Address: schema.PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   strings.TrimSpace(r.configValue(PathStreetLine1) + " " + r.configValue(PathStreetLine2)),
			AddressLocality: r.configValue(PathCity),
			PostalCode:      r.configValue(PathPostcode),
			AddressRegion:   r.regionName(ctx, r.configValue(PathRegionID)),
			AddressCountry:  r.countryName(ctx, r.configValue(PathCountryID)),
		},
		AreaServed: schema.Country{
			Type: "Country",
			Name: countries,
		},
		NumberOfEmployees: schema.QuantitativeValue{
			Type:     "QuantitativeValue",
			MinValue: r.variable(ctx, VarEmployeesMin),
			MaxValue: r.variable(ctx, VarEmployeesMax),
		},
		SameAs: schema.SplitList(r.variable(ctx, VarSameAs)),
		AggregateRating: schema.StoreRating{
			Type:        "AggregateRating",
			BestRating:  schema.BestRating,
			WorstRating: schema.WorstRating,
			RatingValue: "4.5",
			ReviewCount: "4010",
			URL:         r.variable(ctx, VarAggregateRatingURL),
		},
	}

	out, err := schema.Marshal(doc)
	if err != nil {
		r.log.Error().Err(err).Str("store", r.page.Store.ID).Msg("failed to serialize organization")
		return "", errx.WrapRender(err)
	}
	return out, nil
}

func (r *Organization) configValue(path string) string {
	if r.config == nil {
		return ""
	}
	return strings.TrimSpace(r.config.Value(path, r.page.Store.ID))
}

// variable resolves a custom variable. Lookup failures yield "".
func (r *Organization) variable(ctx context.Context, code string) string {
	if r.variables == nil {
		return ""
	}
	v, err := r.variables.LoadByCode(ctx, code, r.page.Store.ID)
	if err != nil {
		r.log.Debug().Err(err).Str("variable", code).Msg("custom variable not resolved")
		return ""
	}
	return strings.TrimSpace(v.Value())
}

func (r *Organization) regionName(ctx context.Context, id string) string {
	if id == "" || r.directory == nil {
		return ""
	}
	name, err := r.directory.RegionName(ctx, id)
	if err != nil {
		r.log.Debug().Err(err).Str("region", id).Msg("region not resolved")
		return ""
	}
	return name
}

func (r *Organization) countryName(ctx context.Context, code string) string {
	code = strings.TrimSpace(code)
	if code == "" || r.directory == nil {
		return ""
	}
	name, err := r.directory.CountryName(ctx, code)
	if err != nil {
		r.log.Debug().Err(err).Str("country", code).Msg("country not resolved")
		return ""
	}
	return name
}
