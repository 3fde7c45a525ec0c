package core

// FeatureItem describes one marketing card on the homepage.
type FeatureItem struct {
	Title       string
	VideoSrc    string
	Description string
}

var featureList = [...]FeatureItem{
	{
		Title:       "Easy to Setup",
		VideoSrc:    "https://pipeguru.ai/Experimentation_time_bold.mp4",
		Description: "Pipeguru was designed from the ground up to be easily installed and setup in under 30 minutes.",
	},
	{
		Title:       "Measure what matters",
		VideoSrc:    "https://pipeguru.ai/lower_CAC.mp4",
		Description: "Drive down acquisition costs and lift conversion rates with your custom definitions and empower your entire team.",
	},
	{
		Title:       "Design 1:1 personalized funnels",
		VideoSrc:    "https://pipeguru.ai/last_video.mp4",
		Description: "Rollout funnels for all your user segments with versioning and rollback in case things go wrong.",
	},
}

// FeatureList returns the homepage features in display order. The slice is a
// fresh copy on every call.
func FeatureList() []FeatureItem {
	items := make([]FeatureItem, len(featureList))
	copy(items, featureList[:])
	return items
}
