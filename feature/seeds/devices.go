package seeds

import "inventory-seeder/core/catalog"

var manufacturerData = []struct {
	name, slug string
}{
	{"Cisco", "cisco"},
	{"Arista", "arista"},
	{"Huawei", "huawei"},
	{"Juniper", "juniper"},
	{"H3C", "h3c"},
	{"Fortinet", "fortinet"},
	{"Ubiquiti", "ubiquiti"},
	{"MikroTik", "mikrotik"},
	{"VMware", "vmware"},
}

// Platform manufacturer is empty for vendor-neutral operating systems.
var platformData = []struct {
	name, slug, manufacturer, description string
}{
	{"MikroTik RouterOS", "mikrotik-routeros", "mikrotik", "MikroTik RouterOS"},
	{"Cisco IOS", "cisco-ios", "cisco", "Cisco IOS"},
	{"Cisco NX-OS", "cisco-nxos", "cisco", "Cisco NX-OS"},
	{"Juniper Junos", "juniper-junos", "juniper", "Juniper Junos"},
	{"Arista EOS", "arista-eos", "arista", "Arista EOS"},
	{"H3C Comware", "h3c-comware", "h3c", "H3C Comware"},
	{"Huawei VRP", "huawei-vrp", "huawei", "Huawei VRP"},
	{"Fortinet FortiOS", "fortinet-fortios", "fortinet", "Fortinet FortiOS"},
	{"Ubiquiti UniFi", "ubiquiti-unifi", "ubiquiti", "Ubiquiti UniFi"},
	{"Linux", "linux", "", "Generic Linux"},
	{"Windows Server", "windows-server", "", "Windows Server"},
	{"VMware ESXi", "vmware-esxi", "vmware", "VMware ESXi"},
	{"Proxmox VE", "proxmox-ve", "", "Proxmox VE"},
}

var roleData = []struct {
	name, slug, color string
	vmRole            bool
	description       string
}{
	{"Router", "router", "ff9800", false, "路由器 (广域网/边界)"},
	{"Firewall", "firewall", "f44336", false, "防火墙 (安全网关)"},
	{"Core Switch", "core-switch", "d32f2f", false, "核心交换机 (Spine/Core)"},
	{"Distribution Switch", "distribution-switch", "2196f3", false, "汇聚交换机 (Leaf/Distribution)"},
	{"Access Switch", "access-switch", "03a9f4", false, "接入交换机 (TOR/Access)"},
	{"Management Switch", "management-switch", "9c27b0", false, "带外管理交换机 (OOB)"},
	{"Load Balancer", "load-balancer", "4caf50", false, "负载均衡器"},
	{"Server", "server", "00bcd4", true, "物理服务器"},
	{"PDU", "pdu", "795548", false, "配电单元"},
	{"UPS", "ups", "5d4037", false, "不间断电源"},
	{"Wireless Controller", "wireless-controller", "ffeb3b", false, "无线控制器 (AC)"},
	{"Access Point", "access-point", "fbc02d", false, "无线接入点 (AP)"},
}

func manufacturers() []catalog.Entity {
	out := make([]catalog.Entity, 0, len(manufacturerData))
	for _, m := range manufacturerData {
		out = append(out, entity(catalog.KindManufacturer, m.slug, map[string]any{"name": m.name}))
	}
	return out
}

func platforms() []catalog.Entity {
	out := make([]catalog.Entity, 0, len(platformData))
	for _, p := range platformData {
		e := entity(catalog.KindPlatform, p.slug, map[string]any{
			"name":        p.name,
			"description": p.description,
		})
		if p.manufacturer != "" {
			e.Parents = []catalog.ParentRef{{
				Kind:    catalog.KindManufacturer,
				Key:     p.manufacturer,
				Field:   "manufacturer",
				Mutable: true,
			}}
		}
		out = append(out, e)
	}
	return out
}

func roles() []catalog.Entity {
	out := make([]catalog.Entity, 0, len(roleData))
	for _, r := range roleData {
		out = append(out, entity(catalog.KindDeviceRole, r.slug, map[string]any{
			"name":        r.name,
			"color":       r.color,
			"vm_role":     r.vmRole,
			"description": r.description,
		}))
	}
	return out
}
