// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ServiceType classifies a bookable 24fire service.
type ServiceType string

const (
	ServiceTypeKVM      ServiceType = "KVM"
	ServiceTypeWebspace ServiceType = "WEBSPACE"
	ServiceTypeDomain   ServiceType = "DOMAIN"

	// ServiceTypeAny disables type scoping during resolution.
	ServiceTypeAny ServiceType = ""
)

// ParseServiceType normalizes a user-supplied service type.
func ParseServiceType(s string) (ServiceType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "KVM":
		return ServiceTypeKVM, nil
	case "WEBSPACE":
		return ServiceTypeWebspace, nil
	case "DOMAIN":
		return ServiceTypeDomain, nil
	case "":
		return ServiceTypeAny, nil
	}
	return ServiceTypeAny, fmt.Errorf("unknown service type: %s", s)
}

// Service is one entry of the account's service list. Identity comes from the
// remote system; nothing is minted locally.
type Service struct {
	Name       string      `json:"name"`
	InternalID string      `json:"internal_id"`
	Type       ServiceType `json:"type"`
}

// PowerMode represents a KVM power action.
type PowerMode string

const (
	PowerStart   PowerMode = "start"
	PowerStop    PowerMode = "stop"
	PowerRestart PowerMode = "restart"
)

// ParsePowerMode validates a power mode string.
func ParsePowerMode(s string) (PowerMode, error) {
	switch PowerMode(strings.ToLower(strings.TrimSpace(s))) {
	case PowerStart:
		return PowerStart, nil
	case PowerStop:
		return PowerStop, nil
	case PowerRestart:
		return PowerRestart, nil
	}
	return "", fmt.Errorf("invalid power mode: %s (valid: start, stop, restart)", s)
}

// StringFloat represents a float the API encodes as either a number or a
// string (amounts in particular come back both ways).
type StringFloat float64

// UnmarshalJSON handles string-encoded floats.
func (sf *StringFloat) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*sf = StringFloat(f)
		return nil
	}

	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("invalid float string: %s", str)
	}
	*sf = StringFloat(f)
	return nil
}

func (sf StringFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(sf))
}

func (sf StringFloat) Float64() float64 {
	return float64(sf)
}

// FireTime represents a timestamp in Europe/Berlin timezone, the timezone the
// panel reports all dates in.
type FireTime struct {
	time.Time
}

var berlinLocation *time.Location

func init() {
	var err error
	berlinLocation, err = time.LoadLocation("Europe/Berlin")
	if err != nil {
		// Fallback to UTC+1
		berlinLocation = time.FixedZone("CET", 3600)
	}
}

// UnmarshalJSON parses the timestamp formats the panel emits.
func (ft *FireTime) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	formats := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		t, err := time.ParseInLocation(format, str, berlinLocation)
		if err == nil {
			ft.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse timestamp: %s", str)
}

func (ft FireTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ft.In(berlinLocation).Format("2006-01-02 15:04:05"))
}