package geo

import (
	"context"
	"os"

	"github.com/lintang-b-s/geodistances/pkg"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

var ValidNodeTags = map[string]bool{
	"amenity":          true,
	"building":         true,
	"shop":             true,
	"tourism":          true,
	"leisure":          true,
	"historic":         true,
	"healthcare":       true,
	"office":           true,
	"public_transport": true,
	"railway":          true,
	"aeroway":          true,
	"place":            true,
	"emergency":        true,
}

type OSMNode struct {
	ID     int64
	Name   string
	LatLng LatLng
}

func NewOSMNode(id int64, name string, lat float64, lon float64) OSMNode {
	return OSMNode{
		ID:     id,
		Name:   name,
		LatLng: NewLatLng(lat, lon),
	}
}

func checkIsNodeAllowed(tags osm.Tags, allowed map[string]bool) bool {
	for _, tag := range tags {
		if allowed[tag.Key] {
			return true
		}
	}
	return false
}

// LoadOSMNodes scans an .osm.pbf file and returns every node carrying at least
// one tag key from allowed, in file order. A nil allowed map uses ValidNodeTags.
func LoadOSMNodes(ctx context.Context, mapfile string, allowed map[string]bool) ([]OSMNode, Coordinates, error) {
	if allowed == nil {
		allowed = ValidNodeTags
	}

	f, err := os.Open(mapfile)
	if err != nil {
		return []OSMNode{}, Coordinates{}, pkg.WrapErrorf(err, pkg.ErrNotFound, "cannot open osm file %s", mapfile)
	}
	defer f.Close()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2]Parsing osm nodes..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	defer bar.Finish()

	scanner := osmpbf.New(ctx, f, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	defer scanner.Close()

	nodes := []OSMNode{}
	coords := Coordinates{}
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if !checkIsNodeAllowed(node.Tags, allowed) {
			continue
		}

		osmNode := NewOSMNode(int64(node.ID), node.Tags.Find("name"), node.Lat, node.Lon)
		nodes = append(nodes, osmNode)
		coords = append(coords, osmNode.LatLng)
		bar.Add(1)
	}

	if err := scanner.Err(); err != nil {
		return []OSMNode{}, Coordinates{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "cannot parse osm file %s", mapfile)
	}

	return nodes, coords, nil
}
