package http

import (
	"net/http"
)

// systemInfoResponse is the body of GET /systeminfo. Credentials
// (connection strings, registry auth) are deliberately absent.
type systemInfoResponse struct {
	Hostname           string `json:"hostname"`
	ProvisioningSource string `json:"provisioning_source"`
	RuntimeType        string `json:"runtime_type"`
	WorkloadURI        string `json:"workload_uri"`
	DockerURI          string `json:"docker_uri"`
}

func (h *Handler[T]) getSystemInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, systemInfoResponse{
		Hostname:           h.settings.Hostname(),
		ProvisioningSource: h.settings.Provisioning().Source(),
		RuntimeType:        h.settings.Runtime().Type,
		WorkloadURI:        h.settings.WorkloadURI().String(),
		DockerURI:          h.settings.DockerURI().String(),
	})
}
