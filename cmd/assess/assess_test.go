package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var baseArgs = []string{"run", "--gender", "Male", "--age", "25", "--height", "170", "--weight", "70"}

func TestRunPrintsReport(t *testing.T) {
	out, err := execute(t, append(baseArgs, "--ch2o", "2.5")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Obesity category: Normal Weight\n")
	assert.Contains(t, out, "BMI: 24.22\n")
	assert.Contains(t, out, "Daily water intake: 2.5 liters")
	assert.Contains(t, out, "Personalized advice:\n")
	assert.NotContains(t, out, "Model prediction")
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, append(baseArgs, "--json", "--weight", "95")...)
	require.NoError(t, err)

	var a domain.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, domain.ObesityI, a.Category)
	assert.Equal(t, 95.0, a.Input.Weight)
	assert.NotEmpty(t, a.Advice)
}

func TestRunRejectsInvalidAnswers(t *testing.T) {
	_, err := execute(t, "run", "--gender", "Male", "--age", "5", "--height", "170", "--weight", "70")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Age")
}

func TestRunWithModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predictions":["Obesity_Type_III"]}`))
	}))
	defer srv.Close()

	out, err := execute(t, append(baseArgs, "--model-url", srv.URL)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Model prediction: Obesity_Type_III")
	assert.Contains(t, out, "Obesity category: Normal Weight")
}

func TestRunModelFailureIsNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, err := execute(t, append(baseArgs, "--model-url", srv.URL)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Obesity category: Normal Weight")
}

func TestRunFromInputFile(t *testing.T) {
	record := map[string]interface{}{
		"Gender": "Female", "Age": 65, "Height": 160, "Weight": 50,
		"family_history_with_overweight": "yes", "FAVC": "no", "FCVC": 1, "NCP": 3,
		"CAEC": "Sometimes", "SMOKE": "no", "CH2O": 1.5, "SCC": "yes",
		"FAF": 0, "TUE": 2, "CALC": "no", "MTRANS": "Walking",
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := execute(t, "run", "--input", path, "--json")
	require.NoError(t, err)
	var a domain.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, domain.NormalWeight, a.Category)
	assert.Equal(t, domain.Female, a.Input.Gender)

	out, err = execute(t, "run", "--input", path, "--json", "--weight", "80")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, domain.ObesityI, a.Category)
	assert.Equal(t, 65, a.Input.Age)
}

func TestExplain(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"explain", "FCVC", "0"}, "Never (do not consume vegetables)\n"},
		{[]string{"explain", "TUE", "3"}, "More than 3 hours\n"},
		{[]string{"explain", "NCP", "1"}, "Unknown\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}

	_, err := execute(t, "explain", "FAF", "lots")
	assert.Error(t, err)
	_, err = execute(t, "explain", "FAF")
	assert.Error(t, err)
}
