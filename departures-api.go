package departures

const TfLBaseURL = "https://api.tfl.gov.uk"
const HuxleyBaseURL = "https://huxley2.azurewebsites.net"

const stopPointArrivalsAPI = "%s/StopPoint/%s/Arrivals"
const stopPointDetailAPI = "%s/StopPoint/%s"
const stopPointSearchAPI = "%s/StopPoint/Search?query=%s&modes=%s"

const railDeparturesAPI = "%s/departures/%s/%d?expand=true"
const railStationSearchAPI = "%s/crs/%s"

// railDeparturesWindow is the fixed number of upcoming services requested
// from the Huxley departures board.
const railDeparturesWindow = 20
