package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft is not clamped: a malformed server answer shows up as a negative number.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// ActivityCollection is keyed by activity name on the wire and keeps the
// order in which the server listed the activities.
type ActivityCollection []Activity

func (c ActivityCollection) Get(name string) (Activity, bool) {
	for _, a := range c {
		if a.Name == name {
			return a, true
		}
	}

	return Activity{}, false
}

func (c ActivityCollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, a := range c {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}

		if a.Participants == nil {
			a.Participants = []string{}
		}

		value, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (c *ActivityCollection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("activities: expected object, got %v", tok)
	}

	out := ActivityCollection{}
	index := make(map[string]int)

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("activities: expected name, got %v", tok)
		}

		var a Activity
		if err = dec.Decode(&a); err != nil {
			return fmt.Errorf("activities: %q: %w", name, err)
		}
		a.Name = name

		if i, seen := index[name]; seen {
			out[i] = a
			continue
		}
		index[name] = len(out)
		out = append(out, a)
	}

	if _, err = dec.Token(); err != nil {
		return err
	}

	*c = out

	return nil
}
