package domain

// Resolution is the answer to a lookup. Fallback is set whenever no partner tenant was found,
// including when the region itself is unknown.
type Resolution struct {
	Region   *Region
	Tenant   *Tenant
	Fallback bool
}

func NewResolution(region *Region, tenant *Tenant) *Resolution {
	return &Resolution{
		Region:   region,
		Tenant:   tenant,
		Fallback: tenant == nil,
	}
}

// Unresolved is the no-match answer routed to the national site.
func Unresolved() *Resolution {
	return NewResolution(nil, nil)
}
