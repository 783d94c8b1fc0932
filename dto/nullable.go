package dto

import "encoding/json"

// The update contracts distinguish three states per field: absent (leave
// unchanged), explicit null (clear), and a value. Plain pointers collapse the
// first two, so fields that accept null-to-clear use these wrappers.

type NullString struct {
	Present bool
	Valid   bool
	Value   string
}

func (n *NullString) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

type NullUint struct {
	Present bool
	Valid   bool
	Value   uint
}

func (n *NullUint) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

type NullFloat64 struct {
	Present bool
	Valid   bool
	Value   float64
}

func (n *NullFloat64) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
