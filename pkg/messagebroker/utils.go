package messagebroker

import (
	"fmt"
	"strings"
)

const (
	pulsarScheme    = "pulsar://"
	pulsarTLSScheme = "pulsar+ssl://"
)

// normalizeTopicName maps a pulsar style topic name onto a name kafka accepts
func normalizeTopicName(name string) string {
	if i := strings.Index(name, "://"); i >= 0 {
		name = name[i+3:]
	}
	return strings.ReplaceAll(name, "/", "_")
}

// pulsarServiceURL adds the pulsar scheme to a bare host:port
func pulsarServiceURL(broker string) string {
	if strings.HasPrefix(broker, pulsarScheme) || strings.HasPrefix(broker, pulsarTLSScheme) {
		return broker
	}
	return fmt.Sprintf("%v%v", pulsarScheme, broker)
}
