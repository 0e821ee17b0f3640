package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/services/alerts/domain"
)

func severityColor(severity string) string {
	switch severity {
	case "high":
		return "#f44336"
	case "medium":
		return "#ff9800"
	case "low":
		return "#4caf50"
	default:
		return "#2196f3"
	}
}

var alertTmpl = template.Must(template.New("alert").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"color": severityColor,
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #667eea; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
    .alert-box { background: {{ color .Severity }}; color: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .stat-value { font-size: 28px; font-weight: bold; color: #667eea; }
    .footer { text-align: center; color: #999; font-size: 12px; margin-top: 30px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>GeoGuardian Alert</h1>
      <p>Environmental Change Detected</p>
    </div>
    <div class="content">
      <div class="alert-box">
        <h2>{{ upper .Severity }} SEVERITY ALERT</h2>
        <p>{{ .Summary }}</p>
      </div>
      <h3>Change Detection Results</h3>
      <p><span class="stat-value">{{ printf "%.2f" .ChangePercentage }}%</span> change detected</p>
      <p><strong>Pixels Changed:</strong> {{ .ChangedPixels }} of {{ .TotalPixels }}</p>
      <h3>Additional Details</h3>
      <p><strong>Date Analyzed:</strong> {{ .Date }}</p>
      <p><strong>Change Type:</strong> {{ .ChangeType }}</p>
      <p><strong>Region:</strong> {{ .Location }}</p>
      <div class="footer">
        <p>This is an automated alert from GeoGuardian Environmental Monitoring</p>
        <p>Powered by Sentinel-2 Satellite Data</p>
      </div>
    </div>
  </div>
</body>
</html>`))

// render produces the subject and HTML body for a normalized alert
func render(a domain.Alert) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := alertTmpl.Execute(&buf, a); err != nil {
		return "", "", perr.Wrapf(err, perr.ErrorCodeUnknown, "alert template render failed")
	}
	subject = fmt.Sprintf(
		"%s Severity Alert: %.2f%% Change Detected",
		strings.ToUpper(a.Severity), a.ChangePercentage,
	)
	return subject, buf.String(), nil
}
