package catalog

// The lists below are the checklist source of truth. Item ids are derived
// from these names, so renaming an entry orphans any previously stored
// record for it.

var waStateParks = []string{
	"Alta Lake", "Anderson Lake", "Battle Ground Lake", "Bay View", "Beacon Rock",
	"Belfair", "Birch Bay", "Blake Island", "Bogachiel", "Bridgeport",
	"Brooks Memorial", "Cama Beach", "Camano Island", "Cape Disappointment",
	"Columbia Hills", "Conconully", "Curlew Lake", "Dash Point", "Deception Pass",
	"Dosewallips", "Fields Spring", "Flaming Geyser", "Fort Casey", "Fort Columbia",
	"Fort Ebey", "Fort Flagler", "Fort Townsend", "Fort Worden", "Ginkgo Petrified Forest",
	"Goldendale Observatory", "Grayland Beach", "Ike Kinswa", "Illahee", "Kanaskat-Palmer",
	"Kitsap Memorial", "Kopachuck", "Lake Chelan", "Lake Easton", "Lake Sammamish",
	"Lake Sylvia", "Lake Wenatchee", "Larrabee", "Lewis and Clark", "Lime Kiln Point",
	"Lincoln Rock", "Manchester", "Maryhill", "Millersylvania", "Moran",
	"Mount Spokane", "Nolte", "Ocean City", "Olallie", "Pacific Beach",
	"Palouse Falls", "Paradise Point", "Peace Arch", "Pearrygin Lake", "Penrose Point",
	"Potholes", "Potlatch", "Rainbow Falls", "Rasar", "Riverside",
	"Rockport", "Sacajawea", "Saltwater", "Scenic Beach", "Seaquest",
	"Sequim Bay", "South Whidbey", "Spencer Spit", "Steamboat Rock", "Sun Lakes-Dry Falls",
	"Twanoh", "Twenty-Five Mile Creek", "Wallace Falls", "Wenatchee Confluence",
	"Westport Light", "Yakima Sportsman",
}

var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
	"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
	"Washington", "West Virginia", "Wisconsin", "Wyoming",
}

var nationalParks = []string{
	"Acadia", "American Samoa", "Arches", "Badlands", "Big Bend", "Biscayne",
	"Black Canyon of the Gunnison", "Bryce Canyon", "Canyonlands", "Capitol Reef",
	"Carlsbad Caverns", "Channel Islands", "Congaree", "Crater Lake",
	"Cuyahoga Valley", "Death Valley", "Denali", "Dry Tortugas", "Everglades",
	"Gates of the Arctic", "Gateway Arch", "Glacier", "Glacier Bay",
	"Grand Canyon", "Grand Teton", "Great Basin", "Great Sand Dunes",
	"Great Smoky Mountains", "Guadalupe Mountains", "Haleakala",
	"Hawaii Volcanoes", "Hot Springs", "Indiana Dunes", "Isle Royale",
	"Joshua Tree", "Katmai", "Kenai Fjords", "Kings Canyon", "Kobuk Valley",
	"Lake Clark", "Lassen Volcanic", "Mammoth Cave", "Mesa Verde",
	"Mount Rainier", "New River Gorge", "North Cascades", "Olympic",
	"Petrified Forest", "Pinnacles", "Redwood", "Rocky Mountain", "Saguaro",
	"Sequoia", "Shenandoah", "Theodore Roosevelt", "Virgin Islands",
	"Voyageurs", "White Sands", "Wind Cave", "Wrangell-St. Elias",
	"Yellowstone", "Yosemite", "Zion",
}

var countries = []string{
	"Argentina", "Australia", "Austria", "Bahamas", "Belgium", "Belize",
	"Brazil", "Cambodia", "Canada", "Chile", "China", "Colombia", "Costa Rica",
	"Croatia", "Cuba", "Czech Republic", "Denmark", "Dominican Republic",
	"Ecuador", "Egypt", "Fiji", "Finland", "France", "Germany", "Greece",
	"Guatemala", "Hungary", "Iceland", "India", "Indonesia", "Ireland",
	"Israel", "Italy", "Jamaica", "Japan", "Jordan", "Kenya", "Laos",
	"Malaysia", "Mexico", "Morocco", "Nepal", "Netherlands", "New Zealand",
	"Norway", "Panama", "Peru", "Philippines", "Poland", "Portugal",
	"Singapore", "South Africa", "South Korea", "Spain", "Sri Lanka", "Sweden",
	"Switzerland", "Tanzania", "Thailand", "Turkey", "United Arab Emirates",
	"United Kingdom", "United States", "Vietnam",
}
