// Package models contains data structures for the application's domain models.
package models

// Topic classifies a post into one of the fixed blog categories.
type Topic string

const (
	TopicFood   Topic = "FOOD"
	TopicStay   Topic = "STAY"
	TopicSpot   Topic = "SPOT"
	TopicOthers Topic = "OTHERS"
)

// Topics lists every valid topic value.
var Topics = []Topic{TopicFood, TopicStay, TopicSpot, TopicOthers}

// Valid reports whether t is one of the known topic values.
func (t Topic) Valid() bool {
	switch t {
	case TopicFood, TopicStay, TopicSpot, TopicOthers:
		return true
	}
	return false
}

// Label returns the display label used by the front-end for this topic.
func (t Topic) Label() string {
	switch t {
	case TopicFood:
		return "美食"
	case TopicStay:
		return "住宿"
	case TopicSpot:
		return "景點"
	case TopicOthers:
		return "其他"
	}
	return string(t)
}
