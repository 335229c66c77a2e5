//go:build unit
// +build unit

package messagebroker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NormalizeTopicName(t *testing.T) {
	assert.Equal(t, "p1_s1", normalizeTopicName("p1/s1"))
	assert.Equal(t, "p1_s1_t1", normalizeTopicName("p1/s1/t1"))
	assert.Equal(t, "public_default_t1", normalizeTopicName("persistent://public/default/t1"))
}

func Test_pulsarServiceURL(t *testing.T) {
	assert.Equal(t, "pulsar://localhost:6650", pulsarServiceURL("localhost:6650"))
	assert.Equal(t, "pulsar://localhost:6650", pulsarServiceURL("pulsar://localhost:6650"))
	assert.Equal(t, "pulsar+ssl://broker:6651", pulsarServiceURL("pulsar+ssl://broker:6651"))
}
