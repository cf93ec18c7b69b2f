package inventory

import (
	"strings"

	"steam-inventory/internal/domain"
)

const (
	// DefaultRarityName is used when an item carries no rarity tag.
	DefaultRarityName = "Consumer Grade"
	// DefaultRarityColor is the color of DefaultRarityName and of unknown rarities.
	DefaultRarityColor = "#b0c3d9"
	// DefaultWearColor is used when no wear tier is found.
	DefaultWearColor = "#8f98a0"

	rarityCategory       = "Rarity"
	collectionColorCode  = "9da1a9"
	exteriorLabel        = "Exterior:"
	iconCDNBase          = "https://community.akamai.steamstatic.com/economy/image/"
	defaultIconDimension = "256fx256f"
)

var rarityColors = map[string]string{
	"consumer grade":   DefaultRarityColor,
	"base grade":       DefaultRarityColor,
	"industrial grade": "#5e98d9",
	"mil-spec grade":   "#4b69ff",
	"mil-spec":         "#4b69ff",
	"high grade":       "#4b69ff",
	"restricted":       "#8847ff",
	"remarkable":       "#8847ff",
	"classified":       "#d32ce6",
	"exotic":           "#d32ce6",
	"covert":           "#eb4b4b",
	"extraordinary":    "#eb4b4b",
	"contraband":       "#e4ae39",
}

// WearTier is a cosmetic condition tier.
type WearTier struct {
	Name  string
	Color string
}

// WearTiers is ordered; the first tier found in an item's descriptions wins.
var WearTiers = []WearTier{
	{Name: "Factory New", Color: "#4b69ff"},
	{Name: "Minimal Wear", Color: "#5cb85c"},
	{Name: "Field-Tested", Color: "#f0ad4e"},
	{Name: "Well-Worn", Color: "#e67e22"},
	{Name: "Battle-Scarred", Color: "#d9534f"},
}

// Rarity is the display tier of an item.
type Rarity struct {
	Name  string
	Color string
}

// Attributes are the display attributes derived from an item descriptor.
// Empty strings mean the heuristic found nothing.
type Attributes struct {
	Rarity     Rarity
	Wear       WearTier
	Exterior   string
	FlavorText string
	Collection string
	IconURL    string
}

// Describe derives every display attribute of item.
func Describe(item domain.Item) Attributes {
	lines := descriptionLines(item)
	return Attributes{
		Rarity:     RarityOf(item),
		Wear:       wearOf(lines),
		Exterior:   exteriorOf(lines),
		FlavorText: flavorTextOf(lines),
		Collection: collectionOf(item),
		IconURL:    IconURL(item.IconURL),
	}
}

// RarityOf reads the first Rarity tag of item.
func RarityOf(item domain.Item) Rarity {
	for _, tag := range item.Tags {
		if !strings.EqualFold(tag.Category, rarityCategory) && !strings.EqualFold(tag.LocalizedCategoryName, rarityCategory) {
			continue
		}
		name := strings.TrimSpace(tag.LocalizedTagName)
		if name == "" {
			break
		}
		return Rarity{Name: name, Color: RarityColor(name)}
	}
	return Rarity{Name: DefaultRarityName, Color: DefaultRarityColor}
}

// RarityColor maps a rarity name to its color. Every input, including the
// empty string and unknown names, yields a color.
func RarityColor(name string) string {
	if c, ok := rarityColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return DefaultRarityColor
}

// IconURL expands an icon hash into a CDN URL. Absolute URLs pass through.
func IconURL(icon string) string {
	icon = strings.TrimSpace(icon)
	switch {
	case icon == "":
		return ""
	case strings.HasPrefix(icon, "https://"):
		return icon
	default:
		return iconCDNBase + icon + "/" + defaultIconDimension
	}
}

func wearOf(lines []string) WearTier {
	for _, tier := range WearTiers {
		for _, line := range lines {
			if strings.Contains(line, tier.Name) {
				return tier
			}
		}
	}
	return WearTier{Color: DefaultWearColor}
}

func exteriorOf(lines []string) string {
	for _, line := range lines {
		if _, after, ok := strings.Cut(line, exteriorLabel); ok {
			if v := strings.TrimSpace(after); v != "" {
				return v
			}
		}
	}
	return ""
}

func flavorTextOf(lines []string) string {
	for _, line := range lines {
		first := strings.Index(line, `"`)
		last := strings.LastIndex(line, `"`)
		if first < 0 || last <= first {
			continue
		}
		if v := strings.TrimSpace(line[first+1 : last]); v != "" {
			return v
		}
	}
	return ""
}

func collectionOf(item domain.Item) string {
	for _, d := range item.Descriptions {
		colored := strings.EqualFold(strings.TrimPrefix(d.Color, "#"), collectionColorCode) ||
			strings.Contains(strings.ToLower(d.Value), "#"+collectionColorCode)
		if !colored {
			continue
		}
		if v := strings.TrimSpace(stripMarkup(d.Value)); v != "" {
			return v
		}
	}
	return ""
}

func descriptionLines(item domain.Item) []string {
	lines := make([]string, 0, len(item.Descriptions))
	for _, d := range item.Descriptions {
		if v := strings.TrimSpace(stripMarkup(d.Value)); v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}
