package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RestockStatus represents the status of a restock order
type RestockStatus int

const (
	RestockStatusPending  RestockStatus = 0
	RestockStatusReceived RestockStatus = 1
	RestockStatusCanceled RestockStatus = 2
)

func (s RestockStatus) String() string {
	return [...]string{"Pending", "Received", "Canceled"}[s]
}

func (s RestockStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *RestockStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = RestockStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = RestockStatusPending
	case "Received":
		*s = RestockStatusReceived
	case "Canceled":
		*s = RestockStatusCanceled
	}
	return nil
}

func (s RestockStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *RestockStatus) Scan(value interface{}) error {
	if value == nil {
		*s = RestockStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = RestockStatus(v)
	case int:
		*s = RestockStatus(v)
	}
	return nil
}
