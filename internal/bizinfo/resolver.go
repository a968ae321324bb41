package bizinfo

import "strings"

// Canonical field names resolved by the Resolver. They mirror the entries
// of config/fields.yaml.
const (
	FieldID                = "id"
	FieldTitle             = "title"
	FieldOrganization      = "organization"
	FieldRegion            = "region"
	FieldDescription       = "description"
	FieldSupportContent    = "support_content"
	FieldApplicationPeriod = "application_period"
	FieldApplicationMethod = "application_method"
	FieldTargetAudience    = "target_audience"
	FieldDetailURL         = "detail_url"
	FieldHashtags          = "hashtags"
	FieldCategory          = "category"
)

// Resolver extracts canonical values from raw records by evaluating the
// configured fallback chains first-match-wins. It never fails: exhausting a
// chain yields the field's documented default.
type Resolver struct {
	rules    *Rules
	chains   map[string]FieldChain
	regionBy map[string]string // short or full form -> full form
}

func NewResolver(rules *Rules) *Resolver {
	chains := make(map[string]FieldChain, len(rules.Fields))
	for _, chain := range rules.Fields {
		chains[chain.Name] = chain
	}

	regionBy := make(map[string]string, len(rules.Regions)*2)
	for _, region := range rules.Regions {
		regionBy[region.Short] = region.Full
		regionBy[region.Full] = region.Full
	}

	return &Resolver{rules: rules, chains: chains, regionBy: regionBy}
}

// Resolve returns the first non-empty candidate for the canonical field, or
// the field's default. Unknown field names resolve to "".
func (r *Resolver) Resolve(raw RawAnnouncement, field string) string {
	chain, ok := r.chains[field]
	if !ok {
		return ""
	}
	if v := r.firstNonEmpty(raw, chain.Keys); v != "" {
		return v
	}
	return chain.Default
}

// rawValue is Resolve without the default: it reports what the upstream
// record actually carried, "" when the chain is exhausted.
func (r *Resolver) rawValue(raw RawAnnouncement, field string) string {
	return r.firstNonEmpty(raw, r.chains[field].Keys)
}

func (r *Resolver) firstNonEmpty(raw RawAnnouncement, keys []string) string {
	for _, key := range keys {
		if v := raw.String(key); v != "" {
			return v
		}
	}
	return ""
}

// RegionName reports whether v names a known region, returning the full
// legal form when it does.
func (r *Resolver) RegionName(v string) (string, bool) {
	full, ok := r.regionBy[strings.TrimSpace(v)]
	return full, ok
}

// OrganizationAndRegion resolves the two fields together. The primary
// organization field sometimes carries a region name instead of an agency;
// when it does, that value serves as the region (unless a dedicated region
// field is present) and the secondary organization field takes over.
func (r *Resolver) OrganizationAndRegion(raw RawAnnouncement) (org, region string) {
	orgChain := r.chains[FieldOrganization]
	regionChain := r.chains[FieldRegion]

	region = r.firstNonEmpty(raw, regionChain.Keys)

	var misfiled string
	for _, key := range orgChain.Keys {
		v := raw.String(key)
		if v == "" {
			continue
		}
		if full, isRegion := r.RegionName(v); isRegion {
			if misfiled == "" {
				misfiled = full
			}
			continue
		}
		org = v
		break
	}

	if org == "" {
		org = orgChain.Default
	}
	if region == "" {
		region = misfiled
	}
	if region == "" {
		region = regionChain.Default
	}
	return org, region
}
