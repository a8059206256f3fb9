package output

import (
	"github.com/digitalocean/godo"
)

// DefaultDropletAttributes is used when no attributes are requested.
const DefaultDropletAttributes = "name,status"

// DropletFormatter knows the droplet attributes users can select.
var DropletFormatter = NewObjectFormatter(
	Field[*godo.Droplet]{Name: "id", Extract: func(d *godo.Droplet) any { return d.ID }, Styles: map[Style]string{StyleTable: "%8d"}},
	Field[*godo.Droplet]{Name: "name", Extract: func(d *godo.Droplet) any { return d.Name }, Styles: map[Style]string{StyleTable: "%12s"}},
	Field[*godo.Droplet]{Name: "ip", Extract: publicIPv4, Styles: map[Style]string{StyleTable: "%-15s"}},
	Field[*godo.Droplet]{Name: "ipv6", Extract: publicIPv6, Styles: map[Style]string{StyleTable: "%-39s"}},
	Field[*godo.Droplet]{Name: "status", Extract: func(d *godo.Droplet) any { return d.Status }, Styles: map[Style]string{StyleTable: "%-6s"}},
	Field[*godo.Droplet]{Name: "private_ip", Extract: privateIPv4, Styles: map[Style]string{StyleTable: "%-15s"}},
	Field[*godo.Droplet]{Name: "size", Extract: sizeSlug, Styles: map[Style]string{StyleTable: "%-5s"}},
	Field[*godo.Droplet]{Name: "region", Extract: regionSlug, Styles: map[Style]string{StyleTable: "%-4s"}},
	Field[*godo.Droplet]{Name: "image", Extract: imageSlug, Styles: map[Style]string{StyleTable: "%-16s"}},
)

// Droplets without networks yet (status "new") have no addresses; render
// them as empty strings.

func publicIPv4(d *godo.Droplet) any {
	ip, _ := d.PublicIPv4()
	return ip
}

func publicIPv6(d *godo.Droplet) any {
	ip, _ := d.PublicIPv6()
	return ip
}

func privateIPv4(d *godo.Droplet) any {
	ip, _ := d.PrivateIPv4()
	return ip
}

func sizeSlug(d *godo.Droplet) any {
	if d.SizeSlug != "" {
		return d.SizeSlug
	}
	if d.Size != nil {
		return d.Size.Slug
	}
	return ""
}

func regionSlug(d *godo.Droplet) any {
	if d.Region == nil {
		return ""
	}
	return d.Region.Slug
}

func imageSlug(d *godo.Droplet) any {
	if d.Image == nil {
		return ""
	}
	return d.Image.Slug
}
