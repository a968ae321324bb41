package bizinfo

import (
	"encoding/json"
	"fmt"
)

// Envelope keys the API has used across versions, tried in priority order.
var envelopeKeys = []string{"jsonList", "jsonArray"}

// ExtractItems locates the item collection inside a response body whose
// envelope shape varies by upstream version: a top-level array under
// jsonList or jsonArray, or an RSS-style rss.channel.item. A body with no
// recognizable collection yields an empty slice, not an error; only
// undecodable JSON fails.
func ExtractItems(body []byte) ([]RawAnnouncement, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}

	for _, key := range envelopeKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if items, ok := decodeItems(raw); ok {
			return items, nil
		}
	}

	if raw, ok := envelope["rss"]; ok {
		var rss struct {
			Channel struct {
				Item json.RawMessage `json:"item"`
			} `json:"channel"`
		}
		if err := json.Unmarshal(raw, &rss); err == nil && len(rss.Channel.Item) > 0 {
			if items, ok := decodeItems(rss.Channel.Item); ok {
				return items, nil
			}
		}
	}

	return []RawAnnouncement{}, nil
}

// decodeItems accepts both an array of items and the single-object form RSS
// converters emit for one-item channels.
func decodeItems(raw json.RawMessage) ([]RawAnnouncement, bool) {
	var items []RawAnnouncement
	if err := json.Unmarshal(raw, &items); err == nil {
		if items == nil {
			items = []RawAnnouncement{}
		}
		return items, true
	}

	var single RawAnnouncement
	if err := json.Unmarshal(raw, &single); err == nil && len(single) > 0 {
		return []RawAnnouncement{single}, true
	}

	return nil, false
}
