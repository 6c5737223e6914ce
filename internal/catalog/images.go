// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package catalog

import (
	"hash/fnv"
	"strings"
)

const stockImageBase = "https://images.unsplash.com/"

var stockImages = map[string][]string{
	"nail": {
		"photo-1632516643720-e7f5d7d6ecc9?auto=format&fit=crop&w=400&q=80",
		"photo-1604654894610-df63bc536371?auto=format&fit=crop&w=400&q=80",
	},
	"shampoo": {
		"photo-1631729371254-42c2892f0e6e?auto=format&fit=crop&w=400&q=80",
		"photo-1556228720-19277026dfb6?auto=format&fit=crop&w=400&q=80",
	},
	"conditioner": {
		"photo-1576426863848-c218516d9b1a?auto=format&fit=crop&w=400&q=80",
		"photo-1629198688000-71f23e745b6e?auto=format&fit=crop&w=400&q=80",
	},
	"makeup": {
		"photo-1596462502278-27bfdd403348?auto=format&fit=crop&w=400&q=80",
		"photo-1512496015851-a90fb38ba796?auto=format&fit=crop&w=400&q=80",
	},
	"generic": {
		"photo-1556228578-0d85b1a4d571?auto=format&fit=crop&w=400&q=80",
		"photo-1608248597279-f99d160bfbc8?auto=format&fit=crop&w=400&q=80",
	},
}

// imageKeywords is checked in order; the first group with a matching keyword wins.
var imageKeywords = []struct {
	group    string
	keywords []string
}{
	{"nail", []string{"nail", "lacquer", "polish"}},
	{"shampoo", []string{"shampoo", "wash"}},
	{"conditioner", []string{"conditioner", "mask"}},
	{"makeup", []string{"lip", "eye", "powder", "makeup"}},
}

func needsPlaceholder(url string) bool {
	u := strings.ToLower(url)
	return u == "" || u == "nan" || strings.Contains(u, "placehold.co")
}

// PlaceholderImage picks a stock image for a product with no usable image.
// The choice depends only on name and productID.
func PlaceholderImage(name, productID string) string {
	lower := strings.ToLower(name)
	group := "generic"
	for _, kw := range imageKeywords {
		if containsAny(lower, kw.keywords) {
			group = kw.group
			break
		}
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	images := stockImages[group]
	return stockImageBase + images[int(h.Sum32()%uint32(len(images)))]
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
