package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pipeguru/docsite/internal/core"
)

const videoFallback = "Your browser does not support the video tag."

// HomepageFeatures lays the items out as a row of equal cards, one per item
// in the given order.
func HomepageFeatures(items []core.FeatureItem) g.Node {
	return Section(
		Class("features"),
		Div(
			Class("container"),
			Div(
				Class("row"),
				g.Map(items, Feature),
			),
		),
	)
}

// Feature renders one card: a looping muted video above a title and text.
func Feature(item core.FeatureItem) g.Node {
	return Div(
		Class("col col--4"),
		Div(
			Class("featureVideoContainer"),
			Video(
				Class("featureVideo"),
				g.Attr("autoplay"),
				g.Attr("loop"),
				g.Attr("muted"),
				g.Attr("playsinline"),
				Source(Src(item.VideoSrc), Type("video/mp4")),
				g.Text(videoFallback),
			),
		),
		Div(
			Class("text--center padding-horiz--md padding-vert--md"),
			H3(g.Text(item.Title)),
			P(g.Text(item.Description)),
		),
	)
}
