package seeds

import "inventory-seeder/core/catalog"

var tenantData = []struct {
	name, slug, description string
}{
	{"上海万联信息科技有限公司", "shanghai-wanlian", "Floor 24, No. 59, Lane 380, Tianyaoqiao Road, Xuhui District, Shanghai"},
	{"上海元协力营人工智能科技有限公司", "shanghai-yuanxielying", "上海市普陀区云岭西路600弄5号3层"},
	{"Allied Business Cloud Limited", "allied-business-cloud", "萬聯商用雲服務有限公司 - Flat A, 3/F., JCG Building, 16 Mongkok Road, Kowloon, Hong Kong"},
	{"AlliedBusiness Co., Ltd.", "alliedbusiness-jp", "アライドビジネス株式会社 - Ginza 1-12-4 NE BLD 7F, Chiyoda, Tokyo"},
	{"TeraTeams Inc.", "terateams-inc", "2048 E Villa ST APT 11, Pasadena, CA 91107"},
}

var siteGroupData = []struct {
	name, slug, description string
}{
	{"Edge Nodes", "edge-nodes", "边缘节点"},
	{"Data Center", "data-center", "数据中心"},
}

func tenants() []catalog.Entity {
	out := make([]catalog.Entity, 0, len(tenantData))
	for _, t := range tenantData {
		out = append(out, entity(catalog.KindTenant, t.slug, map[string]any{
			"name":        t.name,
			"description": t.description,
		}))
	}
	return out
}

func siteGroups() []catalog.Entity {
	out := make([]catalog.Entity, 0, len(siteGroupData))
	for _, g := range siteGroupData {
		out = append(out, entity(catalog.KindSiteGroup, g.slug, map[string]any{
			"name":        g.name,
			"description": g.description,
		}))
	}
	return out
}
