package geo

// Country names as reported in Place.Country.
const (
	UnitedStates  = "United States"
	Canada        = "Canada"
	Nigeria       = "Nigeria"
	UnitedKingdom = "United Kingdom"
)

var usStates = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas", "CA": "California",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware", "FL": "Florida", "GA": "Georgia",
	"HI": "Hawaii", "ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
	"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey",
	"NM": "New Mexico", "NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
	"DC": "District of Columbia",
}

var caProvinces = map[string]string{
	"AB": "Alberta", "BC": "British Columbia", "MB": "Manitoba", "NB": "New Brunswick",
	"NL": "Newfoundland and Labrador", "NS": "Nova Scotia", "ON": "Ontario", "PE": "Prince Edward Island",
	"QC": "Quebec", "SK": "Saskatchewan",
}

var ngStates = []string{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa", "Benue", "Borno",
	"Cross River", "Delta", "Ebonyi", "Edo", "Ekiti", "Enugu", "Gombe", "Imo", "Jigawa",
	"Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos", "Nasarawa", "Niger",
	"Ogun", "Ondo", "Osun", "Oyo", "Plateau", "Rivers", "Sokoto", "Taraba", "Yobe", "Zamfara",
	"Federal Capital Territory",
}

// countryAliases maps lower-case spellings to the country name.
var countryAliases = map[string]string{
	"united states": UnitedStates, "united states of america": UnitedStates, "usa": UnitedStates, "us": UnitedStates, "u.s.": UnitedStates, "u.s.a.": UnitedStates, "america": UnitedStates,
	"canada": Canada, "nigeria": Nigeria,
	"united kingdom": UnitedKingdom, "uk": UnitedKingdom, "u.k.": UnitedKingdom, "great britain": UnitedKingdom, "england": UnitedKingdom, "scotland": UnitedKingdom, "wales": UnitedKingdom,
	"ireland": "Ireland", "germany": "Germany", "france": "France", "netherlands": "Netherlands", "the netherlands": "Netherlands",
	"spain": "Spain", "portugal": "Portugal", "italy": "Italy", "sweden": "Sweden", "switzerland": "Switzerland", "poland": "Poland",
	"india": "India", "singapore": "Singapore", "japan": "Japan", "china": "China", "united arab emirates": "United Arab Emirates", "uae": "United Arab Emirates",
	"australia": "Australia", "new zealand": "New Zealand", "brazil": "Brazil", "mexico": "Mexico", "argentina": "Argentina",
	"ghana": "Ghana", "kenya": "Kenya", "south africa": "South Africa", "egypt": "Egypt", "rwanda": "Rwanda", "uganda": "Uganda", "tanzania": "Tanzania", "ethiopia": "Ethiopia",
}

// City is a known city with its region (state, province or metro) and country.
type City struct {
	Name    string
	Region  string
	Country string
}

var cities = []City{
	// United States
	{"New York", "New York", UnitedStates}, {"New York City", "New York", UnitedStates}, {"Brooklyn", "New York", UnitedStates},
	{"San Francisco", "California", UnitedStates}, {"Los Angeles", "California", UnitedStates}, {"San Diego", "California", UnitedStates},
	{"San Jose", "California", UnitedStates}, {"Oakland", "California", UnitedStates}, {"Palo Alto", "California", UnitedStates},
	{"Mountain View", "California", UnitedStates}, {"Sunnyvale", "California", UnitedStates}, {"Seattle", "Washington", UnitedStates},
	{"Redmond", "Washington", UnitedStates}, {"Portland", "Oregon", UnitedStates}, {"Austin", "Texas", UnitedStates},
	{"Dallas", "Texas", UnitedStates}, {"Houston", "Texas", UnitedStates}, {"San Antonio", "Texas", UnitedStates},
	{"Chicago", "Illinois", UnitedStates}, {"Boston", "Massachusetts", UnitedStates}, {"Cambridge", "Massachusetts", UnitedStates},
	{"Denver", "Colorado", UnitedStates}, {"Boulder", "Colorado", UnitedStates}, {"Atlanta", "Georgia", UnitedStates},
	{"Miami", "Florida", UnitedStates}, {"Orlando", "Florida", UnitedStates}, {"Tampa", "Florida", UnitedStates},
	{"Phoenix", "Arizona", UnitedStates}, {"Philadelphia", "Pennsylvania", UnitedStates}, {"Pittsburgh", "Pennsylvania", UnitedStates},
	{"Washington DC", "District of Columbia", UnitedStates}, {"Arlington", "Virginia", UnitedStates}, {"Raleigh", "North Carolina", UnitedStates},
	{"Charlotte", "North Carolina", UnitedStates}, {"Nashville", "Tennessee", UnitedStates}, {"Minneapolis", "Minnesota", UnitedStates},
	{"Detroit", "Michigan", UnitedStates}, {"Salt Lake City", "Utah", UnitedStates}, {"Las Vegas", "Nevada", UnitedStates},
	{"Columbus", "Ohio", UnitedStates}, {"Baltimore", "Maryland", UnitedStates}, {"Newark", "New Jersey", UnitedStates},
	// Canada
	{"Toronto", "Ontario", Canada}, {"Ottawa", "Ontario", Canada}, {"Waterloo", "Ontario", Canada},
	{"Vancouver", "British Columbia", Canada}, {"Montreal", "Quebec", Canada}, {"Calgary", "Alberta", Canada}, {"Edmonton", "Alberta", Canada},
	// Nigeria
	{"Lagos", "Lagos", Nigeria}, {"Ikeja", "Lagos", Nigeria}, {"Lekki", "Lagos", Nigeria}, {"Victoria Island", "Lagos", Nigeria},
	{"Abuja", "Federal Capital Territory", Nigeria}, {"Port Harcourt", "Rivers", Nigeria}, {"Ibadan", "Oyo", Nigeria},
	{"Kano", "Kano", Nigeria}, {"Kaduna", "Kaduna", Nigeria}, {"Enugu", "Enugu", Nigeria}, {"Benin City", "Edo", Nigeria},
	{"Jos", "Plateau", Nigeria}, {"Abeokuta", "Ogun", Nigeria}, {"Warri", "Delta", Nigeria}, {"Asaba", "Delta", Nigeria},
	{"Ilorin", "Kwara", Nigeria}, {"Owerri", "Imo", Nigeria}, {"Calabar", "Cross River", Nigeria}, {"Uyo", "Akwa Ibom", Nigeria},
	// United Kingdom and Europe
	{"London", "England", UnitedKingdom}, {"Manchester", "England", UnitedKingdom}, {"Birmingham", "England", UnitedKingdom},
	{"Leeds", "England", UnitedKingdom}, {"Bristol", "England", UnitedKingdom}, {"Edinburgh", "Scotland", UnitedKingdom}, {"Glasgow", "Scotland", UnitedKingdom},
	{"Dublin", "Leinster", "Ireland"}, {"Berlin", "Berlin", "Germany"}, {"Munich", "Bavaria", "Germany"}, {"Hamburg", "Hamburg", "Germany"},
	{"Paris", "Ile-de-France", "France"}, {"Amsterdam", "North Holland", "Netherlands"}, {"Madrid", "Madrid", "Spain"},
	{"Barcelona", "Catalonia", "Spain"}, {"Lisbon", "Lisbon", "Portugal"}, {"Stockholm", "Stockholm", "Sweden"},
	{"Zurich", "Zurich", "Switzerland"}, {"Warsaw", "Masovia", "Poland"}, {"Milan", "Lombardy", "Italy"},
	// Asia, Oceania, Americas, Africa
	{"Singapore", "Singapore", "Singapore"}, {"Bangalore", "Karnataka", "India"}, {"Bengaluru", "Karnataka", "India"},
	{"Mumbai", "Maharashtra", "India"}, {"Pune", "Maharashtra", "India"}, {"Delhi", "Delhi", "India"}, {"New Delhi", "Delhi", "India"},
	{"Hyderabad", "Telangana", "India"}, {"Chennai", "Tamil Nadu", "India"}, {"Tokyo", "Tokyo", "Japan"},
	{"Dubai", "Dubai", "United Arab Emirates"}, {"Sydney", "New South Wales", "Australia"}, {"Melbourne", "Victoria", "Australia"},
	{"Auckland", "Auckland", "New Zealand"}, {"Sao Paulo", "Sao Paulo", "Brazil"}, {"Mexico City", "Mexico City", "Mexico"},
	{"Buenos Aires", "Buenos Aires", "Argentina"}, {"Accra", "Greater Accra", "Ghana"}, {"Nairobi", "Nairobi", "Kenya"},
	{"Cape Town", "Western Cape", "South Africa"}, {"Johannesburg", "Gauteng", "South Africa"}, {"Cairo", "Cairo", "Egypt"},
	{"Kigali", "Kigali", "Rwanda"}, {"Kampala", "Central", "Uganda"},
}
