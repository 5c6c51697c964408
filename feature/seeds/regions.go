package seeds

import "inventory-seeder/core/catalog"

type region struct {
	name, slug, description, parent string
}

var regionData = []region{
	{"Asia Pacific", "asia-pacific", "亚太地区", ""},
	{"Europe", "europe", "欧洲", ""},
	{"North America", "north-america", "北美洲", ""},

	{"China", "china", "中国", "asia-pacific"},
	{"Beijing", "beijing", "中国-北京", "china"},
	{"Shanghai", "shanghai", "中国-上海", "china"},
	{"Shenzhen", "shenzhen", "中国-深圳", "china"},
	{"Germany", "germany", "德国", "europe"},
	{"Frankfurt", "frankfurt", "德国-法兰克福", "germany"},
	{"HongKong", "hongkong", "香港", "asia-pacific"},
	{"Japan", "japan", "日本", "asia-pacific"},
	{"Tokyo", "tokyo", "日本-东京", "japan"},
	{"Singapore", "singapore", "新加坡", "asia-pacific"},
	{"USA", "usa", "美国", "north-america"},
	{"San Diego", "san-diego", "美国-圣地亚哥", "usa"},
	{"Seattle", "seattle", "美国-西雅图", "usa"},
}

// regions re-parents countries under continents; the parent link is mutable
// so records created before the continents existed get corrected.
func regions() []catalog.Entity {
	out := make([]catalog.Entity, 0, len(regionData))
	for _, r := range regionData {
		e := entity(catalog.KindRegion, r.slug, map[string]any{
			"name":        r.name,
			"description": r.description,
		})
		if r.parent != "" {
			e.Parents = []catalog.ParentRef{{
				Kind:    catalog.KindRegion,
				Key:     r.parent,
				Field:   "parent",
				Mutable: true,
			}}
		}
		out = append(out, e)
	}
	return out
}
