// Package models contains data types and constants for the zamani demo widget.
package models

import "time"

// Timing for the demo widget
const (
	PlaceholderInterval = 3000 * time.Millisecond
	BackgroundInterval  = 6000 * time.Millisecond
	ReplyDelay          = 1000 * time.Millisecond
)

// Brand strings shown by the hero mockup
const (
	ProductName = "Zamani Labs"
	ChatName    = "ZamaniChat"
	ContactURL  = "mailto:hello@zamanilabs.com"
	Headline    = "The consent layer for AI."
	Subtext     = "Contribute to AI improvement voluntarily. Get transparent attribution and fair compensation."
	Copyright   = "2026 Zamani Labs Inc. All rights reserved."
)

// actionChips are the decorative prompt shortcuts under the input
var actionChips = []string{"Chat", "Research", "Create", "Analyze", "Collaborate"}

// Consent labels
const (
	LabelContributing = "Contributing"
	LabelPrivate      = "Private"
)

// modelCatalog is the fixed dropdown order
var modelCatalog = []string{
	"Zamani Pro",
	"GPT-5",
	"Claude Opus 4.6",
	"Claude Sonnet 4.5",
	"GPT-4o",
	"Gemini 2.0 Flash",
	"Gemini 2.0 Pro",
	"DeepSeek V3",
	"Llama 4",
}

var placeholderExamples = []string{
	"Let's chat about my schedule today",
	"Generate an image of a sunset over mountains",
	"Help me write a professional email",
	"Explain quantum computing in simple terms",
	"Create a workout plan for beginners",
	"Summarize this article for me",
	"Write a poem about artificial intelligence",
	"Plan a 3-day trip to Tokyo",
}

// Background is one crossfade layer with its static treatment.
type Background struct {
	Image      string  `json:"image" yaml:"image"`
	Position   string  `json:"position" yaml:"position"`
	Scale      float64 `json:"scale" yaml:"scale"`
	Brightness float64 `json:"brightness" yaml:"brightness"`
	Contrast   float64 `json:"contrast" yaml:"contrast"`
	Mirrored   bool    `json:"mirrored" yaml:"mirrored"`
}

var backgrounds = [2]Background{
	{Image: "/hero-bg.jpg", Position: "center 40%", Scale: 1.10, Brightness: 0.75, Contrast: 1.1},
	{Image: "/hero-bg-2.jpg", Position: "center 33%", Scale: 1.35, Brightness: 0.75, Contrast: 1.3, Mirrored: true},
}

// NavEntry is a navigation link: a label and the logical path it targets.
type NavEntry struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

// Logical paths
const (
	PathHome        = "/"
	PathChat        = "/chat"
	PathMarketplace = "/marketplace"
	PathAPI         = "/api"
	PathPricing     = "/pricing"
	PathLogin       = "/login"
	PathAbout       = "/about"
	PathTerms       = "/terms"
	PathPrivacy     = "/privacy"
	PathBlog        = "/blog"
)

var bottomNav = []NavEntry{
	{Label: "Home", Path: PathHome},
	{Label: "Marketplace", Path: PathMarketplace},
	{Label: "Zamani Chat", Path: PathChat},
}

var topNav = []NavEntry{
	{Label: ChatName, Path: PathChat},
	{Label: "Marketplace", Path: PathMarketplace},
	{Label: "API", Path: PathAPI},
	{Label: "Pricing", Path: PathPricing},
	{Label: "Login", Path: PathLogin},
	{Label: "Try " + ChatName, Path: PathChat},
}

var footerLinks = []NavEntry{
	{Label: ChatName, Path: PathChat},
	{Label: "Marketplace", Path: PathMarketplace},
	{Label: "API", Path: PathAPI},
	{Label: "Pricing", Path: PathPricing},
	{Label: "Blog", Path: PathBlog},
	{Label: "About", Path: PathAbout},
	{Label: "Terms", Path: PathTerms},
	{Label: "Privacy", Path: PathPrivacy},
	{Label: "Contact", Path: ContactURL},
}

// ModelCatalog returns a copy of the model display names in dropdown order
func ModelCatalog() []string {
	return append([]string(nil), modelCatalog...)
}

// DefaultModel returns the model selected on first load
func DefaultModel() string {
	return modelCatalog[0]
}

// IsCatalogModel reports whether name is one of the catalog entries
func IsCatalogModel(name string) bool {
	for _, m := range modelCatalog {
		if m == name {
			return true
		}
	}
	return false
}

// PlaceholderExamples returns the rotating example prompts
func PlaceholderExamples() []string {
	return append([]string(nil), placeholderExamples...)
}

// Backgrounds returns the two crossfade layers
func Backgrounds() []Background {
	return []Background{backgrounds[0], backgrounds[1]}
}

// BottomNav returns the mobile bottom navigation entries
func BottomNav() []NavEntry {
	return append([]NavEntry(nil), bottomNav...)
}

// TopNav returns the header/mobile menu entries
func TopNav() []NavEntry {
	return append([]NavEntry(nil), topNav...)
}

// ActionChips returns the labels of the decorative chips under the input
func ActionChips() []string {
	return append([]string(nil), actionChips...)
}

// FooterLinks returns the footer and legal links
func FooterLinks() []NavEntry {
	return append([]NavEntry(nil), footerLinks...)
}

// KnownPaths returns every logical path the page links to
func KnownPaths() []string {
	return []string{
		PathHome, PathChat, PathMarketplace, PathAPI, PathPricing,
		PathLogin, PathAbout, PathTerms, PathPrivacy, PathBlog,
	}
}

// IsKnownPath reports whether path is one of the page's logical paths
func IsKnownPath(path string) bool {
	for _, p := range KnownPaths() {
		if p == path {
			return true
		}
	}
	return false
}
