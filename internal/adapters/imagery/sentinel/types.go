package sentinel

import "geoguardian/internal/core/geo"

// Process API request body, trimmed to the fields this client sends

type processRequest struct {
	Input      processInput  `json:"input"`
	Output     processOutput `json:"output"`
	Evalscript string        `json:"evalscript"`
}

type processInput struct {
	Bounds processBounds `json:"bounds"`
	Data   []processData `json:"data"`
}

type processBounds struct {
	BBox       geo.BBox         `json:"bbox"`
	Properties boundsProperties `json:"properties"`
}

type boundsProperties struct {
	CRS string `json:"crs"`
}

type processData struct {
	Type       string     `json:"type"`
	DataFilter dataFilter `json:"dataFilter"`
}

type dataFilter struct {
	TimeRange        timeRange `json:"timeRange"`
	MaxCloudCoverage int       `json:"maxCloudCoverage"`
}

type timeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type processOutput struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Responses []outputResponse `json:"responses"`
}

type outputResponse struct {
	Identifier string       `json:"identifier"`
	Format     outputFormat `json:"format"`
}

type outputFormat struct {
	Type string `json:"type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// True color composite from the visible bands, brightened for display
const evalscriptTrueColor = `//VERSION=3
function setup() {
  return {
    input: ["B04", "B03", "B02", "dataMask"],
    output: { bands: 3 }
  };
}

function evaluatePixel(sample) {
  return [2.5 * sample.B04, 2.5 * sample.B03, 2.5 * sample.B02];
}`
