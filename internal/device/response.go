package device

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Response is a parsed appliance API response.
//
// The API wraps every reply in a <response> element whose status attribute is
// "success" or "error". Long-running commands return a job identifier either
// as <result><job>603</job></result> (submission) or as a nested
// <result><job><id>603</id><result>OK</result></job></result> (status query).
type Response struct {
	XMLName xml.Name       `xml:"response"`
	Status  string         `xml:"status,attr"`
	Code    string         `xml:"code,attr"`
	Message string         `xml:"msg"`
	Result  responseResult `xml:"result"`
}

type responseResult struct {
	Text string    `xml:",chardata"`
	Job  *jobentry `xml:"job"`
}

// jobentry covers both job element shapes: for a submission response the
// identifier is the element's character data, for a status response it is the
// nested <id> element.
type jobentry struct {
	Text   string `xml:",chardata"`
	ID     string `xml:"id"`
	Status string `xml:"status"`
	Result string `xml:"result"`
}

// ParseResponse decodes a raw API reply. An error-status reply is returned as
// an error carrying the appliance's message.
func ParseResponse(data []byte) (*Response, error) {
	var resp Response
	if err := xml.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Status != "success" {
		msg := strings.TrimSpace(resp.Message)
		if msg == "" {
			msg = strings.TrimSpace(resp.Result.Text)
		}
		return nil, fmt.Errorf("appliance reported %s: %s", resp.Status, msg)
	}
	return &resp, nil
}

// JobID extracts the job identifier from a submission response.
func (r *Response) JobID() (string, error) {
	if r.Result.Job == nil {
		return "", fmt.Errorf("response contains no job element")
	}
	if id := strings.TrimSpace(r.Result.Job.ID); id != "" {
		return id, nil
	}
	if id := strings.TrimSpace(r.Result.Job.Text); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("response contains an empty job identifier")
}

// JobResult returns the job's result field from a status-query response,
// e.g. "OK", "FAIL", or "PEND" while the job is still running.
func (r *Response) JobResult() (string, error) {
	if r.Result.Job == nil {
		return "", fmt.Errorf("response contains no job element")
	}
	return strings.TrimSpace(r.Result.Job.Result), nil
}

// ResultText returns the plain result body, e.g. "yes" from a readiness
// query.
func (r *Response) ResultText() string {
	return strings.TrimSpace(r.Result.Text)
}
