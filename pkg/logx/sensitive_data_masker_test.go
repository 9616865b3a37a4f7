package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"unistay/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Phone",
			input:  []byte(`{"title":"Room near campus","phone":"+94771234567"}`),
			output: []byte(`{"title":"Room near campus","phone":"[MASKED]"}`),
		},
		{
			name:   "Phone capital letter",
			input:  []byte(`{"title":"Room near campus","Phone":"+94771234567"}`),
			output: []byte(`{"title":"Room near campus","Phone":"[MASKED]"}`),
		},
		{
			name:   "Landlord contact details",
			input:  []byte(`{"landlord_name": "J. Perera", "contact_number": "0771234567", "email": "jperera@example.com", "num_sharing": 2}`),
			output: []byte(`{"landlord_name": "[MASKED]", "contact_number": "[MASKED]", "email": "[MASKED]", "num_sharing": 2}`),
		},
		{
			name:   "No sensitive fields",
			input:  []byte(`{"room_type":"single","safety_score":7}`),
			output: []byte(`{"room_type":"single","safety_score":7}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
