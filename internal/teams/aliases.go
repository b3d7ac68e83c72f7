package teams

import "github.com/yourusername/pick-settler/internal/models"

// franchise is one canonical team with the aliases upstream systems use for it.
// The canonical name is always an alias of itself.
type franchise struct {
	name    string
	aliases []string
}

var nbaFranchises = []franchise{
	{"Atlanta Hawks", []string{"hawks", "atlanta", "atl"}},
	{"Boston Celtics", []string{"celtics", "boston", "bos"}},
	{"Brooklyn Nets", []string{"nets", "brooklyn", "bkn", "brk", "bk"}},
	{"Charlotte Hornets", []string{"hornets", "charlotte", "cha"}},
	{"Chicago Bulls", []string{"bulls", "chicago", "chi"}},
	{"Cleveland Cavaliers", []string{"cavaliers", "cavs", "cleveland", "cle"}},
	{"Dallas Mavericks", []string{"mavericks", "mavs", "dallas", "dal"}},
	{"Denver Nuggets", []string{"nuggets", "denver", "den"}},
	{"Detroit Pistons", []string{"pistons", "detroit", "det"}},
	{"Golden State Warriors", []string{"warriors", "golden state", "gsw", "gs"}},
	{"Houston Rockets", []string{"rockets", "houston", "hou"}},
	{"Indiana Pacers", []string{"pacers", "indiana", "ind"}},
	{"Los Angeles Clippers", []string{"clippers", "la clippers", "l a clippers", "lac"}},
	{"Los Angeles Lakers", []string{"lakers", "la lakers", "l a lakers", "lal"}},
	{"Memphis Grizzlies", []string{"grizzlies", "grizz", "memphis", "mem"}},
	{"Miami Heat", []string{"heat", "miami", "mia"}},
	{"Milwaukee Bucks", []string{"bucks", "milwaukee", "mil"}},
	{"Minnesota Timberwolves", []string{"timberwolves", "wolves", "minnesota", "min"}},
	{"New Orleans Pelicans", []string{"pelicans", "new orleans", "nop", "no"}},
	{"New York Knicks", []string{"knicks", "new york", "ny knicks", "nyk", "ny"}},
	{"Oklahoma City Thunder", []string{"thunder", "oklahoma city", "okc"}},
	{"Orlando Magic", []string{"magic", "orlando", "orl"}},
	{"Philadelphia 76ers", []string{"76ers", "sixers", "philadelphia", "phi"}},
	{"Phoenix Suns", []string{"suns", "phoenix", "phx"}},
	{"Portland Trail Blazers", []string{"trail blazers", "blazers", "portland", "por"}},
	{"Sacramento Kings", []string{"kings", "sacramento", "sac"}},
	{"San Antonio Spurs", []string{"spurs", "san antonio", "sas", "sa"}},
	{"Toronto Raptors", []string{"raptors", "toronto", "tor"}},
	{"Utah Jazz", []string{"jazz", "utah", "uta"}},
	{"Washington Wizards", []string{"wizards", "washington", "was", "wsh"}},
}

var nflFranchises = []franchise{
	{"Arizona Cardinals", []string{"cardinals", "arizona", "ari"}},
	{"Atlanta Falcons", []string{"falcons", "atlanta", "atl"}},
	{"Baltimore Ravens", []string{"ravens", "baltimore", "bal"}},
	{"Buffalo Bills", []string{"bills", "buffalo", "buf"}},
	{"Carolina Panthers", []string{"panthers", "carolina", "car"}},
	{"Chicago Bears", []string{"bears", "chicago", "chi"}},
	{"Cincinnati Bengals", []string{"bengals", "cincinnati", "cin"}},
	{"Cleveland Browns", []string{"browns", "cleveland", "cle"}},
	{"Dallas Cowboys", []string{"cowboys", "dallas", "dal"}},
	{"Denver Broncos", []string{"broncos", "denver", "den"}},
	{"Detroit Lions", []string{"lions", "detroit", "det"}},
	{"Green Bay Packers", []string{"packers", "green bay", "gb"}},
	{"Houston Texans", []string{"texans", "houston", "hou"}},
	{"Indianapolis Colts", []string{"colts", "indianapolis", "ind"}},
	{"Jacksonville Jaguars", []string{"jaguars", "jags", "jacksonville", "jax"}},
	{"Kansas City Chiefs", []string{"chiefs", "kansas city", "kc"}},
	{"Las Vegas Raiders", []string{"raiders", "las vegas", "oakland raiders", "lv", "lvr"}},
	{"Los Angeles Chargers", []string{"chargers", "la chargers", "lac"}},
	{"Los Angeles Rams", []string{"rams", "la rams", "lar"}},
	{"Miami Dolphins", []string{"dolphins", "miami", "mia"}},
	{"Minnesota Vikings", []string{"vikings", "minnesota", "min"}},
	{"New England Patriots", []string{"patriots", "pats", "new england", "ne"}},
	{"New Orleans Saints", []string{"saints", "new orleans", "no"}},
	{"New York Giants", []string{"giants", "ny giants", "nyg"}},
	{"New York Jets", []string{"jets", "ny jets", "nyj"}},
	{"Philadelphia Eagles", []string{"eagles", "philadelphia", "phi"}},
	{"Pittsburgh Steelers", []string{"steelers", "pittsburgh", "pit"}},
	{"San Francisco 49ers", []string{"49ers", "niners", "san francisco", "sf"}},
	{"Seattle Seahawks", []string{"seahawks", "seattle", "sea"}},
	{"Tampa Bay Buccaneers", []string{"buccaneers", "bucs", "tampa bay", "tb"}},
	{"Tennessee Titans", []string{"titans", "tennessee", "ten"}},
	{"Washington Commanders", []string{"commanders", "washington", "was", "wsh"}},
}

var nhlFranchises = []franchise{
	{"Anaheim Ducks", []string{"ducks", "anaheim", "ana"}},
	{"Boston Bruins", []string{"bruins", "boston", "bos"}},
	{"Buffalo Sabres", []string{"sabres", "buffalo", "buf"}},
	{"Calgary Flames", []string{"flames", "calgary", "cgy"}},
	{"Carolina Hurricanes", []string{"hurricanes", "canes", "carolina", "car"}},
	{"Chicago Blackhawks", []string{"blackhawks", "chicago", "chi"}},
	{"Colorado Avalanche", []string{"avalanche", "avs", "colorado", "col"}},
	{"Columbus Blue Jackets", []string{"blue jackets", "columbus", "cbj"}},
	{"Dallas Stars", []string{"stars", "dallas", "dal"}},
	{"Detroit Red Wings", []string{"red wings", "detroit", "det"}},
	{"Edmonton Oilers", []string{"oilers", "edmonton", "edm"}},
	{"Florida Panthers", []string{"panthers", "florida", "fla"}},
	{"Los Angeles Kings", []string{"kings", "la kings", "lak"}},
	{"Minnesota Wild", []string{"wild", "minnesota", "min"}},
	{"Montreal Canadiens", []string{"canadiens", "habs", "montreal", "mtl"}},
	{"Nashville Predators", []string{"predators", "preds", "nashville", "nsh"}},
	{"New Jersey Devils", []string{"devils", "new jersey", "nj", "njd"}},
	{"New York Islanders", []string{"islanders", "ny islanders", "nyi"}},
	{"New York Rangers", []string{"rangers", "ny rangers", "nyr"}},
	{"Ottawa Senators", []string{"senators", "sens", "ottawa", "ott"}},
	{"Philadelphia Flyers", []string{"flyers", "philadelphia", "phi"}},
	{"Pittsburgh Penguins", []string{"penguins", "pens", "pittsburgh", "pit"}},
	{"San Jose Sharks", []string{"sharks", "san jose", "sj", "sjs"}},
	{"Seattle Kraken", []string{"kraken", "seattle", "sea"}},
	{"St. Louis Blues", []string{"blues", "st louis", "saint louis", "stl"}},
	{"Tampa Bay Lightning", []string{"lightning", "tampa bay", "tb", "tbl"}},
	{"Toronto Maple Leafs", []string{"maple leafs", "leafs", "toronto", "tor"}},
	{"Utah Mammoth", []string{"mammoth", "utah hockey club", "utah hc", "utah", "uta"}},
	{"Vancouver Canucks", []string{"canucks", "vancouver", "van"}},
	{"Vegas Golden Knights", []string{"golden knights", "vegas", "vgk"}},
	{"Washington Capitals", []string{"capitals", "caps", "washington", "wsh"}},
	{"Winnipeg Jets", []string{"jets", "winnipeg", "wpg"}},
}

var mlbFranchises = []franchise{
	{"Arizona Diamondbacks", []string{"diamondbacks", "dbacks", "d-backs", "arizona", "ari", "az"}},
	{"Atlanta Braves", []string{"braves", "atlanta", "atl"}},
	{"Baltimore Orioles", []string{"orioles", "baltimore", "bal"}},
	{"Boston Red Sox", []string{"red sox", "boston", "bos"}},
	{"Chicago Cubs", []string{"cubs", "chc"}},
	{"Chicago White Sox", []string{"white sox", "cws", "chw"}},
	{"Cincinnati Reds", []string{"reds", "cincinnati", "cin"}},
	{"Cleveland Guardians", []string{"guardians", "cleveland", "cle"}},
	{"Colorado Rockies", []string{"rockies", "colorado", "col"}},
	{"Detroit Tigers", []string{"tigers", "detroit", "det"}},
	{"Houston Astros", []string{"astros", "houston", "hou"}},
	{"Kansas City Royals", []string{"royals", "kansas city", "kc"}},
	{"Los Angeles Angels", []string{"angels", "la angels", "laa"}},
	{"Los Angeles Dodgers", []string{"dodgers", "la dodgers", "lad"}},
	{"Miami Marlins", []string{"marlins", "miami", "mia"}},
	{"Milwaukee Brewers", []string{"brewers", "milwaukee", "mil"}},
	{"Minnesota Twins", []string{"twins", "minnesota", "min"}},
	{"New York Mets", []string{"mets", "ny mets", "nym"}},
	{"New York Yankees", []string{"yankees", "ny yankees", "nyy"}},
	{"Athletics", []string{"a's", "oakland athletics", "oakland", "ath", "oak"}},
	{"Philadelphia Phillies", []string{"phillies", "philadelphia", "phi"}},
	{"Pittsburgh Pirates", []string{"pirates", "pittsburgh", "pit"}},
	{"San Diego Padres", []string{"padres", "san diego", "sd"}},
	{"San Francisco Giants", []string{"giants", "sf giants", "san francisco", "sf"}},
	{"Seattle Mariners", []string{"mariners", "seattle", "sea"}},
	{"St. Louis Cardinals", []string{"cardinals", "st louis", "saint louis", "stl"}},
	{"Tampa Bay Rays", []string{"rays", "tampa bay", "tb"}},
	{"Texas Rangers", []string{"rangers", "texas", "tex"}},
	{"Toronto Blue Jays", []string{"blue jays", "jays", "toronto", "tor"}},
	{"Washington Nationals", []string{"nationals", "nats", "washington", "wsh"}},
}

// College programs shared by NCAAB and NCAAF.
var collegeFranchises = []franchise{
	{"Alabama Crimson Tide", []string{"alabama", "bama", "crimson tide"}},
	{"Arkansas Razorbacks", []string{"arkansas", "razorbacks"}},
	{"Auburn Tigers", []string{"auburn"}},
	{"Baylor Bears", []string{"baylor"}},
	{"Clemson Tigers", []string{"clemson"}},
	{"Creighton Bluejays", []string{"creighton"}},
	{"Duke Blue Devils", []string{"duke", "blue devils"}},
	{"Florida State Seminoles", []string{"florida state", "fsu", "seminoles"}},
	{"Georgia Bulldogs", []string{"georgia", "uga"}},
	{"Gonzaga Bulldogs", []string{"gonzaga", "zags"}},
	{"Houston Cougars", []string{"houston"}},
	{"Iowa State Cyclones", []string{"iowa state", "cyclones"}},
	{"Kansas Jayhawks", []string{"kansas", "ku", "jayhawks"}},
	{"Kentucky Wildcats", []string{"kentucky", "uk"}},
	{"LSU Tigers", []string{"lsu", "louisiana state"}},
	{"Marquette Golden Eagles", []string{"marquette"}},
	{"Miami Hurricanes", []string{"miami (fl)", "miami fl", "miami florida"}},
	{"Michigan State Spartans", []string{"michigan state", "msu", "spartans"}},
	{"Michigan Wolverines", []string{"michigan", "wolverines"}},
	{"North Carolina Tar Heels", []string{"north carolina", "unc", "tar heels"}},
	{"Notre Dame Fighting Irish", []string{"notre dame", "fighting irish"}},
	{"Ohio State Buckeyes", []string{"ohio state", "osu", "buckeyes"}},
	{"Oklahoma Sooners", []string{"oklahoma", "sooners", "ou"}},
	{"Oregon Ducks", []string{"oregon"}},
	{"Penn State Nittany Lions", []string{"penn state", "psu", "nittany lions"}},
	{"Purdue Boilermakers", []string{"purdue", "boilermakers"}},
	{"Tennessee Volunteers", []string{"tennessee", "vols", "volunteers"}},
	{"Texas Longhorns", []string{"texas", "longhorns"}},
	{"UCLA Bruins", []string{"ucla"}},
	{"UConn Huskies", []string{"uconn", "connecticut"}},
	{"USC Trojans", []string{"usc", "southern california", "trojans"}},
	{"Villanova Wildcats", []string{"villanova", "nova"}},
}

var leagueFranchises = map[models.Sport][]franchise{
	models.SportNBA:   nbaFranchises,
	models.SportNFL:   nflFranchises,
	models.SportNHL:   nhlFranchises,
	models.SportMLB:   mlbFranchises,
	models.SportNCAAB: collegeFranchises,
	models.SportNCAAF: collegeFranchises,
}
