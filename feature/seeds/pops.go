package seeds

import "inventory-seeder/core/catalog"

const (
	// DefaultTenant operates every POP site.
	DefaultTenant = "shanghai-wanlian"
	// DefaultSiteGroup classifies every POP site.
	DefaultSiteGroup = "edge-nodes"
)

type pop struct {
	name, slug, region, address, description string
	locations                                []location
}

type location struct {
	name, slug, description string
	racks                   []string
}

var popData = []pop{
	{
		name:        "POP1-SHCEC",
		slug:        "pop1-shcec",
		region:      "shanghai",
		address:     "上海普陀光复西路2739号，会展楼，3A",
		description: "OneNote M3.2.1 LSN1=跨采@普陀-POP1",
		locations:   []location{{name: "3M-J2", slug: "3m-j2", racks: []string{"G4", "G9", "G10"}}},
	},
	{
		name:        "POP2-SNIEC",
		slug:        "pop2-sniec",
		region:      "shanghai",
		address:     "上海浦东龙阳路2345号，新国际博览中心",
		description: "OneNote M3.2.2 LSN2新博:POP2",
		locations:   []location{{name: "SNIEC-SE-F5", slug: "sniec-se-f5", description: "南入口厅光端机房", racks: []string{"RS06"}}},
	},
	{
		name:        "POP22-TYOCC1",
		slug:        "pop22-tyocc1",
		region:      "tokyo",
		address:     "〒135-0061 日本東京都江東区豊洲六丁目2番15号",
		description: "OneNote M3.2.22 LSN22=东京CC1-宋昊合用-Pop22-TYOCC1",
		locations:   []location{{name: "CC1-ServerRoom", slug: "cc1-serverroom", racks: []string{"R01"}}},
	},
	{
		name:        "POP30-R6F-MO",
		slug:        "pop30-r6f-mo",
		region:      "tokyo",
		address:     "日本东京南大冢",
		description: "OneNote M3.2.30 POP30=R6F-MO@东京",
		locations:   []location{{name: "R6F", slug: "r6f", racks: []string{"R01"}}},
	},
	{
		name:        "POP31-B302.O",
		slug:        "pop31-b302-o",
		region:      "tokyo",
		address:     "〒120-0046 東京都足立区小台一丁目16番12号 B302\nB302, 1-16-12 Odai, Adachi-ku, Tokyo 120-0046, Japan",
		description: "OneNote M3.2.31 POP31=B302.O@东京",
		locations:   []location{{name: "B302", slug: "b302", racks: []string{"R01"}}},
	},
}

// pops expands each POP into a site, its locations (scoped to the site) and
// racks (scoped to the site, placed in a location).
func pops() []catalog.Entity {
	var out []catalog.Entity
	for _, p := range popData {
		out = append(out, entity(catalog.KindSite, p.slug,
			map[string]any{
				"name":             p.name,
				"status":           "active",
				"physical_address": p.address,
				"description":      p.description,
			},
			catalog.ParentRef{Kind: catalog.KindRegion, Key: p.region, Field: "region"},
			catalog.ParentRef{Kind: catalog.KindSiteGroup, Key: DefaultSiteGroup, Field: "group"},
			catalog.ParentRef{Kind: catalog.KindTenant, Key: DefaultTenant, Field: "tenant"},
		))

		site := catalog.ParentRef{Kind: catalog.KindSite, Key: p.slug, Field: "site", Scope: true}
		for _, loc := range p.locations {
			attrs := map[string]any{"name": loc.name}
			if loc.description != "" {
				attrs["description"] = loc.description
			}
			out = append(out, entity(catalog.KindLocation, loc.slug, attrs, site))

			inLocation := catalog.ParentRef{Kind: catalog.KindLocation, Key: p.slug + "/" + loc.slug, Field: "location"}
			for _, rack := range loc.racks {
				out = append(out, entity(catalog.KindRack, rack,
					map[string]any{
						"status":   "active",
						"width":    19,
						"u_height": 42,
					},
					site, inLocation,
				))
			}
		}
	}
	return out
}
