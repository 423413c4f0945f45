package model

// PredefinedFeatureKeys lists the built-in room feature tags in display
// order. Rooms may also carry custom tags added at edit time; those fall
// back to the raw key as their label.
var PredefinedFeatureKeys = []string{
	"projector",
	"whiteboard",
	"microphone",
	"sound_system",
	"computer",
	"wifi",
	"conditioner",
	"videocall",
}

var featureLabels = map[string]string{
	"projector":    "Projector",
	"whiteboard":   "Interactive whiteboard",
	"microphone":   "Microphone",
	"sound_system": "Sound system",
	"computer":     "Computer",
	"wifi":         "Wi-Fi",
	"conditioner":  "Air conditioning",
	"videocall":    "Video conferencing",
}

func FeatureLabel(key string) string {
	if label, ok := featureLabels[key]; ok {
		return label
	}
	return key
}
