package audioctl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Format selects how a device record is rendered.
type Format int

const (
	FormatHuman Format = iota
	FormatCLI
	FormatJSON
)

// ParseFormat maps a format name to its Format.
func ParseFormat(text string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "human", "":
		return FormatHuman, true
	case "cli":
		return FormatCLI, true
	case "json":
		return FormatJSON, true
	}
	return FormatHuman, false
}

// FormatRecord renders one device record. Formatting can never fail the
// operation that produced the record: a marshalling problem degrades to
// the human rendering instead of surfacing an error.
func FormatRecord(record DeviceRecord, format Format) string {
	switch format {
	case FormatCLI:
		return fmt.Sprintf("%d\t%s\t%s\t%s", record.ID, record.Role, record.Name, record.UID)
	case FormatJSON:
		type jsonRecord struct {
			DeviceRecord
			Role string `json:"role"`
		}
		data, err := json.Marshal(jsonRecord{DeviceRecord: record, Role: record.Role.String()})
		if err != nil {
			return FormatRecord(record, FormatHuman)
		}
		return string(data)
	default:
		marker := " "
		if record.IsDefault {
			marker = "*"
		}
		return fmt.Sprintf("%s %s (%s) [%s]", marker, record.Name, record.UID, record.Role)
	}
}

// FormatRecords renders a record per line.
func FormatRecords(records []DeviceRecord, format Format) string {
	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = FormatRecord(record, format)
	}
	return strings.Join(lines, "\n")
}

// ParseDeviceID parses a textual device identifier.
func ParseDeviceID(text string) (DeviceID, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, &InvalidDeviceIdentifierError{Text: text}
	}
	return DeviceID(id), nil
}
