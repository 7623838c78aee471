package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// RiskIndex is the position label of a risk. The wire form may be a JSON
// number or a string. Strings are kept as is; numbers are stored in their
// shortest decimal form, so 1.0 and 1e2 become "1" and "100".
type RiskIndex string

// UnmarshalJSON accepts a number, a string or null
func (x *RiskIndex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*x = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*x = RiskIndex(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return goerr.Wrap(err, "risk index must be a number or a string", goerr.V("raw", string(data)))
	}
	f, err := n.Float64()
	if err != nil {
		return goerr.Wrap(err, "risk index is out of range", goerr.V("raw", string(data)))
	}
	*x = RiskIndex(formatNumber(f))
	return nil
}

// MarshalJSON writes indexes in the shortest decimal form as numbers and
// everything else, including "01" or "NaN", as strings
func (x RiskIndex) MarshalJSON() ([]byte, error) {
	if x.isNumber() {
		return []byte(x), nil
	}
	return json.Marshal(string(x))
}

func (x RiskIndex) isNumber() bool {
	f, err := strconv.ParseFloat(string(x), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return formatNumber(f) == string(x)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the string representation of RiskIndex
func (x RiskIndex) String() string {
	return string(x)
}

// RiskEntry is one analysed risk as shown on the analysis pages
type RiskEntry struct {
	Index                        RiskIndex `json:"index,omitempty"`
	Name                         string    `json:"name,omitempty"`
	Description                  string    `json:"description"`
	Likelihood                   string    `json:"likelihood"`
	Impact                       string    `json:"impact"`
	TriggeringRootCauseEvents    string    `json:"triggering_root_cause_events"`
	TriggeringIntermediateEvents string    `json:"triggering_intermediate_events"`
	Consequences                 string    `json:"consequences"`
	Interdependencies            string    `json:"interdependencies,omitempty"`
}

// HasInterdependencies reports whether the optional interdependencies field is set
func (e *RiskEntry) HasInterdependencies() bool {
	return e.Interdependencies != ""
}

// IndexedRisk pairs a risk index with a short description for summary listings.
// It is encoded as a two element array [index, description].
type IndexedRisk struct {
	Index       RiskIndex
	Description string
}

// UnmarshalJSON accepts [index, description] or an object with index and
// description (or name)
func (x *IndexedRisk) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Index       RiskIndex `json:"index"`
			Description string    `json:"description"`
			Name        string    `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return goerr.Wrap(err, "failed to decode indexed risk object")
		}
		x.Index = obj.Index
		x.Description = obj.Description
		if x.Description == "" {
			x.Description = obj.Name
		}
		return nil
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return goerr.Wrap(err, "indexed risk must be an [index, description] pair")
	}
	if len(pair) != 2 {
		return goerr.New("indexed risk must have exactly two elements", goerr.V("length", len(pair)))
	}
	if err := json.Unmarshal(pair[0], &x.Index); err != nil {
		return goerr.Wrap(err, "invalid indexed risk index")
	}
	if err := json.Unmarshal(pair[1], &x.Description); err != nil {
		return goerr.Wrap(err, "invalid indexed risk description")
	}
	return nil
}

// MarshalJSON writes the pair form
func (x IndexedRisk) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{x.Index, x.Description})
}

// KRI is a key risk indicator with the reason it tracks the risk
type KRI struct {
	Indicator string `json:"indicator"`
	Rationale string `json:"rationale"`
}

// KRIGroup holds the indicators suggested for one risk
type KRIGroup struct {
	KRIs []KRI `json:"kris"`
}

// Control is an internal control with how it mitigates the risk
type Control struct {
	Control     string `json:"control"`
	Explanation string `json:"explanation"`
}

// ControlGroup holds the controls recommended for one risk
type ControlGroup struct {
	Controls []Control `json:"controls"`
}

// Analysis is a detailed assessment of a single risk. Its JSON object is
// readable as a RiskEntry, a KRIGroup and a ControlGroup at the same time.
type Analysis struct {
	RiskEntry
	KRIGroup
	ControlGroup
}
