package canon

// Curated reference data. This is static configuration: built once via
// DefaultReference (optionally overlaid from a JSON file) and only ever read
// afterwards. The classification functions receive it as a parameter so they
// stay pure and testable.

// IconScore carries the fixed cultural-significance sub-scores and default
// tags for a cultural icon. Icons are always A-tier regardless of popularity.
type IconScore struct {
	Historical     float64  `json:"historical"`
	Social         float64  `json:"social"`
	Diasporic      float64  `json:"diasporic"`
	Preservational float64  `json:"preservational"`
	Tags           []string `json:"tags,omitempty"`
}

// ArtistRecord is one entry of the curated artist master: tier plus the
// geographic and stylistic metadata used by the artists command.
type ArtistRecord struct {
	Tier         Tier     `json:"tier"`
	Country      string   `json:"country"`
	Region       string   `json:"region"`
	PrimaryGenre string   `json:"primary_genre"`
	EraActive    []string `json:"era_active,omitempty"`
}

// VibeScores are the 0-100 per-genre playlist-mood defaults.
type VibeScores struct {
	AfroHeat  int `json:"afro_heat"`
	Chill     int `json:"chill"`
	Party     int `json:"party"`
	Workout   int `json:"workout"`
	LateNight int `json:"late_night"`
}

// keywordRule maps one output label to the substrings that trigger it.
// Rule slices are ordered; order is part of the contract.
type keywordRule struct {
	Label    string
	Keywords []string
}

var tierAArtists = []string{
	// Nigerian icons
	"burna boy", "wizkid", "davido", "tiwa savage", "rema", "asake",
	"tems", "ckay", "ayra starr", "fireboy dml", "omah lay", "joeboy",
	"olamide", "yemi alade", "mr eazi", "tekno", "kizz daniel",
	"patoranking", "wande coal", "don jazzy", "2baba", "phyno", "flavour",
	"adekunle gold", "simi", "falz", "ladipoe", "blaqbonez", "oxlade",
	"fela kuti", "femi kuti", "made kuti", "seun kuti",
	// South African icons
	"black coffee", "master kg", "dj maphorisa", "kabza de small",
	"cassper nyovest", "nasty c", "aka", "sjava", "sho madjozi", "makhadzi",
	"focalistic", "uncle waffles", "dj zinhle", "miriam makeba",
	"tyla", "dbn gogo", "lady du", "young stunna", "major league djz",
	// Ghanaian icons
	"sarkodie", "stonebwoy", "shatta wale", "black sherif", "king promise",
	"r2bees", "kwesi arthur", "kuami eugene", "kidi", "efya", "becca",
	"gyakie", "amaarae", "darkovibes", "joey b", "e.l",
	// East African icons
	"diamond platnumz", "sauti sol", "harmonize", "rayvanny", "ali kiba",
	"zuchu", "mbosso", "nandy", "vanessa mdee", "jux", "alikiba",
	"nyashinski", "khaligraph jones", "otile brown", "nviiri", "bien",
	"eddy kenzo", "jose chameleone", "bebe cool",
	// Congolese icons
	"fally ipupa", "koffi olomide", "ferre gola", "innoss b", "werrason",
	"papa wemba", "awilo longomba", "lokua kanza", "heritier watanabe",
	// Francophone icons
	"youssou ndour", "salif keita", "angelique kidjo", "manu dibango",
	"magic system", "dj arafat", "serge beynaud", "toofan",
	"oumou sangare", "amadou & mariam", "tinariwen",
	"damso", "gims", "maitre gims", "niska", "aya nakamura", "dadju",
	// USA diaspora icons
	"beyonce", "rihanna", "drake", "kendrick lamar",
	"jay-z", "jay z", "kanye west", "the weeknd", "sza", "doja cat",
	"cardi b", "nicki minaj", "future", "j cole", "j. cole",
	"frank ocean", "childish gambino", "bruno mars", "usher",
	"michael jackson", "prince", "stevie wonder", "marvin gaye",
	// Caribbean icons
	"bob marley", "sean paul", "shaggy", "vybz kartel", "popcaan", "spice",
	"chronixx", "koffee", "protoje", "damian marley", "buju banton",
	// UK icons
	"stormzy", "dave", "skepta", "wiley", "j hus", "central cee", "jorja smith",
	"little simz", "headie one", "kano",
	// Brazil icons
	"anitta", "ludmilla", "iza", "seu jorge", "gilberto gil",
	// Legends with historical significance
	"king sunny ade", "ebenezer obey", "chief commander ebenezer obey",
	"oliver de coque", "osadebe", "chief osita osadebe",
	"franco luambo", "tabu ley rochereau", "sam mangwana",
	"bembeya jazz", "orchestra baobab", "rail band",
	"hugh masekela", "brenda fassie", "ladysmith black mambazo",
	"alpha blondy", "mory kante",
}

var tierBArtists = []string{
	// Extended Nigerian
	"portable", "seyi vibez", "zinoleesky", "naira marley", "mohbad",
	"bella shmurda", "lil kesh", "ycee", "reekado banks", "dice ailes",
	"peruzzi", "zlatan", "mayorkun", "dremo", "teni", "niniola",
	"ruger", "bnxn", "magixx", "lojay", "victony", "pheelz", "timaya",
	// Extended South African
	"a-reece", "emtee", "shane eagle", "kwesta", "blxckie", "costa titch",
	"25k", "rouge", "nadia nakai", "boity", "moozlie",
	"samthing soweto", "sun-el musician", "zakes bantwini", "mi casa",
	// Extended Ghanaian
	"medikal", "strongman", "kofi kinaata", "fameye", "kofi mole",
	"yaw tog", "o'kenneth", "jay bahd", "city boy", "kweku flick", "camidoh",
	// Extended East African
	"tanasha donna", "willy paul", "bahati", "akothee", "size 8",
	"arrow bwoy", "mejja", "trio mio", "ssaru", "femi one", "marioo",
	// Extended Francophone
	"booba", "pnl", "ninho", "jul", "lacrim", "kaaris",
	"mhd", "gradur", "keblack", "soolking",
	// Guinea
	"takana zion", "mamady keita", "koury simple", "mc freshh", "thiird",
	"maxim bk", "wada du game", "hezbo rap",
}

// culturalIcons lists artists whose cultural significance is historically
// fixed and independent of stream counts.
var culturalIcons = map[string]IconScore{
	"fela kuti":               {Historical: 5, Social: 5, Diasporic: 5, Preservational: 5, Tags: []string{"revolution", "protest", "liberation", "pan-african"}},
	"miriam makeba":           {Historical: 5, Social: 5, Diasporic: 5, Preservational: 4, Tags: []string{"liberation", "anthem", "pan-african"}},
	"bob marley":              {Historical: 5, Social: 5, Diasporic: 5, Preservational: 4, Tags: []string{"liberation", "spiritual", "pan-african"}},
	"youssou ndour":           {Historical: 4, Social: 4, Diasporic: 4, Preservational: 5, Tags: []string{"tradition", "roots", "motherland"}},
	"salif keita":             {Historical: 4, Social: 3, Diasporic: 4, Preservational: 5, Tags: []string{"tradition", "roots"}},
	"king sunny ade":          {Historical: 5, Social: 3, Diasporic: 4, Preservational: 5, Tags: []string{"tradition", "roots"}},
	"papa wemba":              {Historical: 4, Social: 3, Diasporic: 4, Preservational: 5, Tags: []string{"tradition", "roots"}},
	"franco luambo":           {Historical: 5, Social: 4, Diasporic: 3, Preservational: 5},
	"bembeya jazz":            {Historical: 5, Social: 5, Diasporic: 3, Preservational: 5, Tags: []string{"liberation", "tradition", "pan-african"}},
	"angelique kidjo":         {Historical: 4, Social: 4, Diasporic: 5, Preservational: 4, Tags: []string{"diaspora", "bridge", "pan-african"}},
	"hugh masekela":           {Historical: 5, Social: 5, Diasporic: 4, Preservational: 4, Tags: []string{"liberation", "protest"}},
	"brenda fassie":           {Historical: 4, Social: 4, Diasporic: 3, Preservational: 4},
	"ladysmith black mambazo": {Historical: 4, Social: 3, Diasporic: 4, Preservational: 5},
	"alpha blondy":            {Historical: 4, Social: 4, Diasporic: 3, Preservational: 3, Tags: []string{"spiritual", "liberation"}},
	"mory kante":              {Historical: 4, Social: 3, Diasporic: 4, Preservational: 4, Tags: []string{"tradition", "bridge"}},
}

// aliases maps alternative spellings and stage names to the canonical key.
var aliases = map[string]string{
	"burnaboy":       "burna boy",
	"burna":          "burna boy",
	"wiz kid":        "wizkid",
	"starboy":        "wizkid",
	"obo":            "davido",
	"david adeleke":  "davido",
	"fela":           "fela kuti",
	"fela anikulapo": "fela kuti",
	"diamond":        "diamond platnumz",
	"blackcoffee":    "black coffee",
	"psquare":        "p square",
	"p-square":       "p square",
	"innossb":        "innoss b",
	"innoss'b":       "innoss b",
	"youssou n dour": "youssou ndour",
	"maitre gim":     "gims",
	"sekouba":        "sekouba bambino",
	"bambino":        "sekouba bambino",
	"buju":           "bnxn",
	"buju bnxn":      "bnxn",
	"tyla seethal":   "tyla",
}

// artistMaster holds the geographic/stylistic metadata for the curated
// artists that have it. Artists in the tier sets but not listed here get a
// record with "unknown" fields when the master file is built.
var artistMaster = map[string]ArtistRecord{
	"burna boy":        {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2010s", "2020s"}},
	"wizkid":           {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2010s", "2020s"}},
	"davido":           {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2010s", "2020s"}},
	"rema":             {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2020s"}},
	"asake":            {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "amapiano", EraActive: []string{"2020s"}},
	"tems":             {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afro-soul", EraActive: []string{"2020s"}},
	"ckay":             {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2020s"}},
	"ayra starr":       {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2020s"}},
	"fela kuti":        {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"1970s", "1980s", "1990s"}},
	"kizz daniel":      {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2010s", "2020s"}},
	"omah lay":         {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afro-fusion", EraActive: []string{"2020s"}},
	"fireboy dml":      {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2020s"}},
	"olamide":          {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2010s", "2020s"}},
	"tiwa savage":      {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2010s", "2020s"}},
	"yemi alade":       {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2010s", "2020s"}},
	"2baba":            {Tier: TierA, Country: "NG", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2000s", "2010s", "2020s"}},
	"black coffee":     {Tier: TierA, Country: "ZA", Region: "south-africa", PrimaryGenre: "afro-house", EraActive: []string{"2010s", "2020s"}},
	"tyla":             {Tier: TierA, Country: "ZA", Region: "south-africa", PrimaryGenre: "amapiano", EraActive: []string{"2020s"}},
	"kabza de small":   {Tier: TierA, Country: "ZA", Region: "south-africa", PrimaryGenre: "amapiano", EraActive: []string{"2020s"}},
	"dj maphorisa":     {Tier: TierA, Country: "ZA", Region: "south-africa", PrimaryGenre: "amapiano", EraActive: []string{"2010s", "2020s"}},
	"master kg":        {Tier: TierA, Country: "ZA", Region: "south-africa", PrimaryGenre: "sa-house", EraActive: []string{"2020s"}},
	"nasty c":          {Tier: TierA, Country: "ZA", Region: "south-africa", PrimaryGenre: "hip-hop", EraActive: []string{"2010s", "2020s"}},
	"focalistic":       {Tier: TierA, Country: "ZA", Region: "south-africa", PrimaryGenre: "amapiano", EraActive: []string{"2020s"}},
	"uncle waffles":    {Tier: TierA, Country: "ZA", Region: "south-africa", PrimaryGenre: "amapiano", EraActive: []string{"2020s"}},
	"black sherif":     {Tier: TierA, Country: "GH", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2020s"}},
	"sarkodie":         {Tier: TierA, Country: "GH", Region: "west-africa", PrimaryGenre: "hiplife", EraActive: []string{"2010s", "2020s"}},
	"stonebwoy":        {Tier: TierA, Country: "GH", Region: "west-africa", PrimaryGenre: "reggae", EraActive: []string{"2010s", "2020s"}},
	"shatta wale":      {Tier: TierA, Country: "GH", Region: "west-africa", PrimaryGenre: "dancehall", EraActive: []string{"2010s", "2020s"}},
	"king promise":     {Tier: TierA, Country: "GH", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2020s"}},
	"kidi":             {Tier: TierA, Country: "GH", Region: "west-africa", PrimaryGenre: "highlife", EraActive: []string{"2020s"}},
	"kuami eugene":     {Tier: TierA, Country: "GH", Region: "west-africa", PrimaryGenre: "highlife", EraActive: []string{"2020s"}},
	"diamond platnumz": {Tier: TierA, Country: "TZ", Region: "east-africa", PrimaryGenre: "bongo-flava", EraActive: []string{"2010s", "2020s"}},
	"harmonize":        {Tier: TierA, Country: "TZ", Region: "east-africa", PrimaryGenre: "bongo-flava", EraActive: []string{"2010s", "2020s"}},
	"rayvanny":         {Tier: TierA, Country: "TZ", Region: "east-africa", PrimaryGenre: "bongo-flava", EraActive: []string{"2010s", "2020s"}},
	"zuchu":            {Tier: TierA, Country: "TZ", Region: "east-africa", PrimaryGenre: "bongo-flava", EraActive: []string{"2020s"}},
	"ali kiba":         {Tier: TierA, Country: "TZ", Region: "east-africa", PrimaryGenre: "bongo-flava", EraActive: []string{"2000s", "2010s", "2020s"}},
	"fally ipupa":      {Tier: TierA, Country: "CD", Region: "central-africa", PrimaryGenre: "ndombolo", EraActive: []string{"2000s", "2010s", "2020s"}},
	"koffi olomide":    {Tier: TierA, Country: "CD", Region: "central-africa", PrimaryGenre: "soukous", EraActive: []string{"1980s", "1990s", "2000s", "2010s"}},
	"innoss b":         {Tier: TierA, Country: "CD", Region: "central-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2020s"}},
	"gims":             {Tier: TierA, Country: "CD", Region: "central-africa", PrimaryGenre: "hip-hop", EraActive: []string{"2010s", "2020s"}},
	"dadju":            {Tier: TierA, Country: "CD", Region: "central-africa", PrimaryGenre: "rnb", EraActive: []string{"2010s", "2020s"}},
	"papa wemba":       {Tier: TierA, Country: "CD", Region: "central-africa", PrimaryGenre: "rumba", EraActive: []string{"1970s", "1980s", "1990s", "2000s"}},
	"youssou ndour":    {Tier: TierA, Country: "SN", Region: "west-africa", PrimaryGenre: "mbalax", EraActive: []string{"1980s", "1990s", "2000s", "2010s"}},
	"dj arafat":        {Tier: TierA, Country: "CI", Region: "west-africa", PrimaryGenre: "coupe-decale", EraActive: []string{"2000s", "2010s"}},
	"magic system":     {Tier: TierA, Country: "CI", Region: "west-africa", PrimaryGenre: "coupe-decale", EraActive: []string{"2000s", "2010s"}},
	"alpha blondy":     {Tier: TierA, Country: "CI", Region: "west-africa", PrimaryGenre: "reggae", EraActive: []string{"1980s", "1990s", "2000s"}},
	"sauti sol":        {Tier: TierA, Country: "KE", Region: "east-africa", PrimaryGenre: "afropop", EraActive: []string{"2010s", "2020s"}},
	"nyashinski":       {Tier: TierA, Country: "KE", Region: "east-africa", PrimaryGenre: "hip-hop", EraActive: []string{"2010s", "2020s"}},
	"salif keita":      {Tier: TierA, Country: "ML", Region: "west-africa", PrimaryGenre: "highlife", EraActive: []string{"1980s", "1990s", "2000s"}},
	"mory kante":       {Tier: TierA, Country: "GN", Region: "west-africa", PrimaryGenre: "highlife", EraActive: []string{"1980s", "1990s"}},

	"adekunle gold": {Tier: TierB, Country: "NG", Region: "west-africa", PrimaryGenre: "afro-soul", EraActive: []string{"2010s", "2020s"}},
	"simi":          {Tier: TierB, Country: "NG", Region: "west-africa", PrimaryGenre: "afro-soul", EraActive: []string{"2010s", "2020s"}},
	"zlatan":        {Tier: TierB, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2010s", "2020s"}},
	"bnxn":          {Tier: TierB, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2020s"}},
	"victony":       {Tier: TierB, Country: "NG", Region: "west-africa", PrimaryGenre: "afro-fusion", EraActive: []string{"2020s"}},
	"seyi vibez":    {Tier: TierB, Country: "NG", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2020s"}},
	"mayorkun":      {Tier: TierB, Country: "NG", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2010s", "2020s"}},
	"timaya":        {Tier: TierB, Country: "NG", Region: "west-africa", PrimaryGenre: "dancehall", EraActive: []string{"2000s", "2010s", "2020s"}},
	"young stunna":  {Tier: TierB, Country: "ZA", Region: "south-africa", PrimaryGenre: "amapiano", EraActive: []string{"2020s"}},
	"dbn gogo":      {Tier: TierB, Country: "ZA", Region: "south-africa", PrimaryGenre: "amapiano", EraActive: []string{"2020s"}},
	"makhadzi":      {Tier: TierB, Country: "ZA", Region: "south-africa", PrimaryGenre: "sa-house", EraActive: []string{"2020s"}},
	"gyakie":        {Tier: TierB, Country: "GH", Region: "west-africa", PrimaryGenre: "afropop", EraActive: []string{"2020s"}},
	"camidoh":       {Tier: TierB, Country: "GH", Region: "west-africa", PrimaryGenre: "afrobeats", EraActive: []string{"2020s"}},
	"medikal":       {Tier: TierB, Country: "GH", Region: "west-africa", PrimaryGenre: "hip-hop", EraActive: []string{"2010s", "2020s"}},
	"nandy":         {Tier: TierB, Country: "TZ", Region: "east-africa", PrimaryGenre: "bongo-flava", EraActive: []string{"2010s", "2020s"}},
	"mbosso":        {Tier: TierB, Country: "TZ", Region: "east-africa", PrimaryGenre: "bongo-flava", EraActive: []string{"2020s"}},
	"marioo":        {Tier: TierB, Country: "TZ", Region: "east-africa", PrimaryGenre: "bongo-flava", EraActive: []string{"2020s"}},
	"ferre gola":    {Tier: TierB, Country: "CD", Region: "central-africa", PrimaryGenre: "ndombolo", EraActive: []string{"2000s", "2010s", "2020s"}},
	"werrason":      {Tier: TierB, Country: "CD", Region: "central-africa", PrimaryGenre: "ndombolo", EraActive: []string{"1990s", "2000s", "2010s"}},
	"aya nakamura":  {Tier: TierB, Country: "CD", Region: "central-africa", PrimaryGenre: "rnb", EraActive: []string{"2010s", "2020s"}},
	"damso":         {Tier: TierB, Country: "CD", Region: "central-africa", PrimaryGenre: "hip-hop", EraActive: []string{"2010s", "2020s"}},
	"takana zion":   {Tier: TierB, Country: "GN", Region: "west-africa", PrimaryGenre: "reggae", EraActive: []string{"2010s", "2020s"}},
	"bembeya jazz":  {Tier: TierB, Country: "GN", Region: "west-africa", PrimaryGenre: "highlife", EraActive: []string{"1960s", "1970s", "1980s"}},
}

// culturalTagRules is the ordered tag dictionary. A track may match any
// number of tags; there is no cap beyond the vocabulary itself.
var culturalTagRules = []keywordRule{
	{"anthem", []string{"anthem", "national", "independence", "unity", "movement", "giant"}},
	{"revolution", []string{"revolution", "change", "fight", "power", "system", "struggle"}},
	{"liberation", []string{"freedom", "free", "liberation", "emancipation", "chains"}},
	{"protest", []string{"protest", "injustice", "police", "government", "corruption", "sars", "endsars"}},
	{"tradition", []string{"traditional", "heritage", "ancestors", "elders", "culture"}},
	{"roots", []string{"roots", "origin", "motherland", "home", "village", "homeland"}},
	{"motherland", []string{"africa", "mama africa", "motherland", "continent"}},
	{"pan-african", []string{"pan-african", "united africa", "one africa", "together"}},
	{"diaspora", []string{"diaspora", "abroad", "immigrant", "overseas", "foreign"}},
	{"migration", []string{"migrate", "journey", "leaving", "travel", "crossing", "japa"}},
	{"homecoming", []string{"return", "coming back", "welcome home", "finally home"}},
	{"bridge", []string{"bridge", "connect", "fusion", "blend", "unite"}},
	{"street", []string{"street", "hood", "block", "corner", "trap", "ghetto"}},
	{"ghetto", []string{"ghetto", "slum", "struggle", "poverty", "survive"}},
	{"survival", []string{"survive", "struggle", "make it", "overcome", "hustle"}},
	{"wedding", []string{"wedding", "marriage", "bride", "ceremony", "iyawo"}},
	{"festival", []string{"festival", "party", "carnival", "celebration"}},
	{"celebration", []string{"celebrate", "joy", "happy", "party", "dance"}},
	{"spiritual", []string{"spirit", "soul", "divine", "god", "faith"}},
	{"prayer", []string{"prayer", "pray", "lord", "worship", "hallelujah"}},
	{"healing", []string{"heal", "restoration", "peace", "calm", "recover"}},
}

// genreRules is the ordered genre dictionary; the first genre with any
// keyword match wins, and at most one genre is ever assigned.
var genreRules = []keywordRule{
	{"afrobeats", []string{"afrobeat", "naija", "nigerian", "lagos", "wizkid", "davido", "burna"}},
	{"amapiano", []string{"amapiano", "piano", "yanos", "maphorisa", "kabza", "log drum"}},
	{"afro-house", []string{"afro house", "afro-house", "black coffee", "deep house africa"}},
	{"gqom", []string{"gqom", "durban", "babes wodumo"}},
	{"highlife", []string{"highlife", "high life", "ghana", "ghanaian"}},
	{"hiplife", []string{"hiplife", "hip life", "sarkodie"}},
	{"bongo-flava", []string{"bongo flava", "bongo", "tanzania", "diamond platnumz"}},
	{"gengetone", []string{"gengetone", "kenya", "nairobi", "ethic"}},
	{"dancehall", []string{"dancehall", "dance hall", "jamaica", "vybz kartel", "popcaan"}},
	{"reggae", []string{"reggae", "rasta", "bob marley", "roots"}},
	{"soca", []string{"soca", "trinidad", "carnival"}},
	{"zouk", []string{"zouk", "kizomba", "kompa"}},
	{"rumba", []string{"rumba", "congolese", "soukous", "ndombolo"}},
	{"hip-hop", []string{"hip hop", "hiphop", "rap", "rapper", "bars", "flow"}},
	{"rnb", []string{"r&b", "rnb", "r n b", "slow jam", "soul"}},
	{"gospel", []string{"gospel", "worship", "praise", "christian", "church", "hallelujah"}},
	{"funk", []string{"funk", "funky", "carioca", "baile"}},
	{"drill", []string{"drill", "uk drill", "brooklyn drill"}},
	{"grime", []string{"grime", "uk rap"}},
}

// genreVibeDefaults are per-genre playlist-mood scores used when building
// the artist master file.
var genreVibeDefaults = map[string]VibeScores{
	"afrobeats":      {AfroHeat: 85, Chill: 35, Party: 75, Workout: 70, LateNight: 45},
	"afropop":        {AfroHeat: 80, Chill: 45, Party: 70, Workout: 60, LateNight: 50},
	"afro-fusion":    {AfroHeat: 70, Chill: 55, Party: 60, Workout: 50, LateNight: 65},
	"alte":           {AfroHeat: 50, Chill: 80, Party: 40, Workout: 30, LateNight: 85},
	"fuji":           {AfroHeat: 70, Chill: 40, Party: 80, Workout: 50, LateNight: 45},
	"juju":           {AfroHeat: 60, Chill: 55, Party: 70, Workout: 40, LateNight: 50},
	"amapiano":       {AfroHeat: 70, Chill: 50, Party: 90, Workout: 60, LateNight: 80},
	"gqom":           {AfroHeat: 90, Chill: 10, Party: 95, Workout: 85, LateNight: 70},
	"kwaito":         {AfroHeat: 65, Chill: 55, Party: 75, Workout: 50, LateNight: 65},
	"sa-house":       {AfroHeat: 75, Chill: 40, Party: 85, Workout: 70, LateNight: 75},
	"bongo-flava":    {AfroHeat: 75, Chill: 45, Party: 70, Workout: 55, LateNight: 50},
	"gengetone":      {AfroHeat: 80, Chill: 20, Party: 85, Workout: 70, LateNight: 60},
	"ndombolo":       {AfroHeat: 80, Chill: 20, Party: 90, Workout: 70, LateNight: 60},
	"soukous":        {AfroHeat: 75, Chill: 35, Party: 85, Workout: 60, LateNight: 55},
	"rumba":          {AfroHeat: 50, Chill: 75, Party: 60, Workout: 30, LateNight: 80},
	"highlife":       {AfroHeat: 60, Chill: 70, Party: 65, Workout: 40, LateNight: 55},
	"hiplife":        {AfroHeat: 70, Chill: 45, Party: 75, Workout: 55, LateNight: 50},
	"mbalax":         {AfroHeat: 75, Chill: 30, Party: 80, Workout: 65, LateNight: 40},
	"coupe-decale":   {AfroHeat: 85, Chill: 15, Party: 95, Workout: 70, LateNight: 60},
	"afro-house":     {AfroHeat: 65, Chill: 40, Party: 85, Workout: 75, LateNight: 70},
	"afro-soul":      {AfroHeat: 40, Chill: 85, Party: 30, Workout: 20, LateNight: 75},
	"reggae":         {AfroHeat: 40, Chill: 85, Party: 50, Workout: 30, LateNight: 70},
	"dancehall":      {AfroHeat: 75, Chill: 25, Party: 90, Workout: 70, LateNight: 65},
	"hip-hop":        {AfroHeat: 70, Chill: 40, Party: 65, Workout: 80, LateNight: 55},
	"rnb":            {AfroHeat: 35, Chill: 80, Party: 40, Workout: 25, LateNight: 85},
	"gospel":         {AfroHeat: 35, Chill: 65, Party: 45, Workout: 40, LateNight: 30},
	"zouk":           {AfroHeat: 55, Chill: 65, Party: 70, Workout: 35, LateNight: 80},
	"unknown":        {AfroHeat: 50, Chill: 50, Party: 50, Workout: 50, LateNight: 50},
}

// aestheticTagVocabulary bounds the aesthetic tag set, including tags only
// an external classifier can assign.
var aestheticTagVocabulary = []string{
	"innovative", "virtuosic", "influential", "production",
	"lyricism", "arrangement", "timeless",
}

// djTokens gate dj_mix detection: the artist string itself must contain one.
var djTokens = []string{"dj", "black coffee", "uncle waffles", "major league"}

// channelSuffixes are trailing tokens stripped during name normalization.
var channelSuffixes = []string{"official", "music", "vevo", "records", "entertainment", "topic"}
