package store

import "time"

// Seed populates the store with the demo content: ten categories and
// fourteen articles whose publication times are offsets from the store
// clock. It runs to completion before returning, so a caller that checks
// the error is guaranteed a fully seeded store; a partially seeded store is
// never handed out.
func Seed(s *Store) error {
	categoryIDs := map[string]int{}

	for _, ins := range []InsertCategory{
		{Name: "Politics", Slug: "politics"},
		{Name: "Business", Slug: "business"},
		{Name: "Technology", Slug: "technology"},
		{Name: "Science", Slug: "science"},
		{Name: "Health", Slug: "health"},
		{Name: "Sports", Slug: "sports"},
		{Name: "Entertainment", Slug: "entertainment"},
		{Name: "World", Slug: "world"},
		{Name: "Lifestyle", Slug: "lifestyle"},
		{Name: "Opinion", Slug: "opinion"},
	} {
		category, err := s.CreateCategory(ins)
		if err != nil {
			return err
		}
		categoryIDs[ins.Slug] = category.ID
	}

	now := s.now()

	for _, ins := range []InsertArticle{
		{
			Title:   "Global Climate Summit Reaches Landmark Agreement on Emissions",
			Slug:    "global-climate-summit-agreement",
			Excerpt: "World leaders have agreed to an unprecedented reduction in carbon emissions, setting new targets that could dramatically slow climate change over the next decade.",
			Content: `<p>In a historic moment for international climate policy, world leaders at the Global Climate Summit have reached a landmark agreement to significantly reduce carbon emissions worldwide.</p>
<p>The agreement commits nations to cut their carbon emissions by an unprecedented 50% by 2030, with a goal of achieving net-zero emissions by 2050, and includes financial support for developing nations transitioning to clean energy.</p>
<p>Climate scientists have welcomed the deal as ambitious but necessary, though some environmental groups warn it still falls short of what is needed to limit warming to 1.5 degrees Celsius above pre-industrial levels.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1623865611284-35a562c6949c?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			CategoryID:  categoryIDs["world"],
			Author:      "Sarah Johnson",
			PublishedAt: now.Add(-3 * time.Hour),
			ReadTime:    5,
			Featured:    true,
			Trending:    true,
		},
		{
			Title:   "Tech Giant Unveils Revolutionary AI Assistant for Healthcare",
			Slug:    "tech-ai-assistant-healthcare",
			Excerpt: "The new AI system can analyze medical records and help doctors diagnose complex conditions with greater accuracy than previous technologies.",
			Content: `<p>One of the world's leading technology companies has unveiled a groundbreaking artificial intelligence assistant designed for healthcare professionals, potentially transforming how medical diagnoses are made.</p>
<p>In clinical trials, the system demonstrated a 90% accuracy rate in diagnosing complex conditions by analyzing patient records, lab results and imaging studies, outperforming experienced physicians in certain specialized areas.</p>
<p>The technology has received preliminary approval from regulators for use as a decision-support tool and is expected to be deployed first in major academic medical centers.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1586880244406-8b640d5ba770?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["technology"],
			Author:      "Michael Chen",
			PublishedAt: now.Add(-5 * time.Hour),
			ReadTime:    4,
			Trending:    true,
		},
		{
			Title:   "Markets Surge as Inflation Numbers Show Promising Decline",
			Slug:    "markets-surge-inflation-decline",
			Excerpt: "Investors responded positively as the latest economic data suggests inflation may finally be under control after months of concern.",
			Content: `<p>Stock markets worldwide experienced a significant rally today as newly released economic data indicated a larger-than-expected decline in inflation rates across major economies.</p>
<p>The Consumer Price Index report showed inflation decreased to 3.2% annually, down from 4.1% the previous month, sending the S&P 500 up 2.3% and the Nasdaq Composite up 2.9%.</p>
<p>Some analysts cautioned against excessive optimism, noting that one month of positive data does not necessarily indicate a long-term trend.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["business"],
			Author:      "Jennifer Wu",
			PublishedAt: now.Add(-24 * time.Hour),
			ReadTime:    3,
			Trending:    true,
		},
		{
			Title:   "Underdog Team Makes Historic Championship Run",
			Slug:    "underdog-team-championship-run",
			Excerpt: "Against all odds, the team has secured their place in the finals after a season that began with predictions of failure from most analysts.",
			Content: `<p>In what sports commentators are calling one of the greatest underdog stories in recent memory, a team that was widely predicted to finish at the bottom of the standings has secured their place in the championship finals.</p>
<p>Their success has been attributed to innovative tactics from a first-year head coach, breakout performances from rookie players, and a resilience that produced fifteen wins this season by five points or fewer.</p>
<p>The finals begin next week against the defending champions, and once again the oddsmakers have them as heavy underdogs.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["sports"],
			Author:      "Marcus Johnson",
			PublishedAt: now.Add(-26 * time.Hour),
			ReadTime:    4,
			Trending:    true,
		},
		{
			Title:   "Senate Passes Landmark Infrastructure Bill",
			Slug:    "senate-passes-infrastructure-bill",
			Excerpt: "The $1.2 trillion package includes funding for roads, bridges, public transit, broadband, and other critical infrastructure needs.",
			Content: `<p>After months of negotiation and debate, the Senate has passed a landmark $1.2 trillion infrastructure bill, representing one of the largest investments in the nation's infrastructure in decades.</p>
<p>The bipartisan legislation allocates $110 billion for roads and bridges, $66 billion for rail, $65 billion for broadband internet, and $55 billion for water infrastructure, alongside funding for electric vehicle charging and grid modernization.</p>
<p>The bill now moves to the House of Representatives, where it faces a more uncertain path.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1540910419892-4a36d2c3266c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["politics"],
			Author:      "Robert Anderson",
			PublishedAt: now.Add(-48 * time.Hour),
			ReadTime:    5,
		},
		{
			Title:   "New Poll Shows Shifting Voter Priorities Ahead of Midterms",
			Slug:    "new-poll-voter-priorities-midterms",
			Excerpt: "Economic concerns have overtaken other issues as voters consider their choices for the upcoming elections.",
			Content: `<p>A comprehensive new poll reveals that voter priorities have shifted significantly ahead of the midterm elections, with economic issues now dominating the list of concerns.</p>
<p>The survey of registered voters found that cost-of-living concerns ranked first for a majority of respondents across party lines, displacing the issues that led polling earlier in the cycle.</p>
<p>Campaign strategists on both sides are already adjusting their messaging in response to the findings.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1529107386315-e1a2ed48a620?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["politics"],
			Author:      "Amanda Chen",
			PublishedAt: now.Add(-72 * time.Hour),
			ReadTime:    4,
			EditorsPick: true,
		},
		{
			Title:   "Major Security Vulnerability Discovered in Popular Software",
			Slug:    "security-vulnerability-popular-software",
			Excerpt: "Security researchers have identified a critical flaw affecting millions of users, prompting urgent patch releases.",
			Content: `<p>Security researchers have discovered a critical vulnerability in widely used software that could allow attackers to execute arbitrary code on affected systems.</p>
<p>The flaw affects millions of installations worldwide, and the vendor has released emergency patches while urging all users to update immediately.</p>
<p>Organizations are being advised to audit their systems for signs of exploitation, though no widespread attacks have been confirmed so far.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["technology"],
			Author:      "David Wong",
			PublishedAt: now.Add(-28 * time.Hour),
			ReadTime:    3,
		},
		{
			Title:   "Breakthrough in Battery Technology Could Extend EV Range",
			Slug:    "battery-technology-breakthrough-ev-range",
			Excerpt: "Researchers have developed a new battery design that promises to double the range of electric vehicles while reducing charging time.",
			Content: `<p>A team of researchers has announced a breakthrough in battery technology that could dramatically extend the range of electric vehicles while cutting charging times in half.</p>
<p>The new solid-state design replaces the liquid electrolyte found in conventional lithium-ion batteries, improving both energy density and safety.</p>
<p>Several major automakers have already expressed interest in licensing the technology, though commercial production is still estimated to be a few years away.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1535223289827-42f1e9919769?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["technology"],
			Author:      "Jessica Park",
			PublishedAt: now.Add(-48 * time.Hour),
			ReadTime:    4,
			EditorsPick: true,
		},
		{
			Title:   "US Federal Reserve Signals Potential Interest Rate Changes",
			Slug:    "federal-reserve-interest-rate-changes",
			Excerpt: "Markets react as Fed chair comments on inflation trends during press conference.",
			Content: `<p>The Federal Reserve has signaled a potential shift in its interest rate policy following its latest meeting, causing significant movements in financial markets.</p>
<p>During a closely watched press conference, the Fed Chair indicated that the central bank is closely monitoring recent economic data and may adjust its monetary policy approach if current trends continue.</p>
<p>Markets responded immediately to the remarks, with the S&P 500 gaining 1.2% and Treasury yields declining across maturities.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["business"],
			Author:      "Thomas Williams",
			PublishedAt: now.Add(-10 * time.Minute),
			ReadTime:    3,
		},
		{
			Title:   "Scientists Identify Promising Treatment for Rare Disease",
			Slug:    "scientists-treatment-rare-disease",
			Excerpt: "A newly developed therapy has shown remarkable results in early trials, offering hope to patients with few existing options.",
			Content: `<p>Medical researchers have identified a promising new treatment for a rare genetic disorder that affects thousands of patients worldwide and currently has no approved therapies.</p>
<p>In early-stage clinical trials, the treatment halted disease progression in a majority of participants, with several showing measurable improvement in symptoms.</p>
<p>Larger trials are planned for next year, and regulators have granted the therapy fast-track designation.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1579154204601-01588f351e67?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["health"],
			Author:      "Emily Wilson",
			PublishedAt: now.Add(-35 * time.Minute),
			ReadTime:    4,
		},
		{
			Title:   "Major Film Studio Announces Slate of New Productions",
			Slug:    "film-studio-new-productions",
			Excerpt: "The ambitious lineup includes several high-profile adaptations and original projects from acclaimed directors.",
			Content: `<p>One of Hollywood's major studios has announced an ambitious slate of upcoming productions, including several high-profile literary adaptations and original projects from award-winning directors.</p>
<p>The lineup spans genres from science fiction to intimate drama, with production on the first titles set to begin later this year.</p>
<p>Industry analysts see the announcement as a bet on theatrical releases at a time when streaming strategies are being reconsidered across the business.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1485846234645-a62644f84728?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["entertainment"],
			Author:      "Jason Rodriguez",
			PublishedAt: now.Add(-1 * time.Hour),
			ReadTime:    3,
		},
		{
			Title:   "How Sustainable Farming Methods Are Changing Agriculture",
			Slug:    "sustainable-farming-methods-agriculture",
			Excerpt: "Innovative approaches to farming are improving yields while reducing environmental impact across the globe.",
			Content: `<p>A quiet revolution is underway in agriculture as farmers around the world adopt sustainable methods that improve yields while reducing environmental impact.</p>
<p>Techniques such as precision irrigation, cover cropping and integrated pest management are cutting water use and chemical inputs without sacrificing productivity.</p>
<p>Researchers say the shift could prove essential as climate pressures mount on global food systems.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1557804506-669a67965ba0?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["science"],
			Author:      "Maria Rodriguez",
			PublishedAt: now.Add(-48 * time.Hour),
			ReadTime:    8,
			EditorsPick: true,
		},
		{
			Title:   "The Future of Work: Lessons from the Remote Revolution",
			Slug:    "future-work-remote-revolution",
			Excerpt: "Companies and employees are navigating a permanently changed workplace landscape with new expectations and tools.",
			Content: `<p>Years into the remote-work experiment, companies and employees alike are drawing lessons about what a permanently changed workplace means for productivity, culture and careers.</p>
<p>Hybrid arrangements have become the default at many firms, forcing a rethink of office space, management practice and the tools teams use to collaborate.</p>
<p>The organizations faring best, researchers suggest, are those that treat flexibility as a design problem rather than a perk.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1507413245164-6160d8298b31?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["business"],
			Author:      "Alex Turner",
			PublishedAt: now.Add(-96 * time.Hour),
			ReadTime:    6,
			EditorsPick: true,
		},
		{
			Title:   "The Quiet Mental Health Crisis: Finding Solutions",
			Slug:    "mental-health-crisis-solutions",
			Excerpt: "Experts point to promising approaches for addressing the growing demand for mental health support.",
			Content: `<p>Health systems are grappling with a surge in demand for mental health support that has outpaced the supply of clinicians in many regions.</p>
<p>Experts point to a combination of approaches showing promise: expanded telehealth, peer-support programs, and training primary care providers to recognize and treat common conditions.</p>
<p>Advocates caution that lasting progress will require sustained funding rather than short-term initiatives.</p>`,
			ImageURL:    "https://images.unsplash.com/photo-1484950763426-56b5bf172dbb?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CategoryID:  categoryIDs["health"],
			Author:      "Sophia Chen",
			PublishedAt: now.Add(-144 * time.Hour),
			ReadTime:    7,
			EditorsPick: true,
		},
	} {
		if _, err := s.CreateArticle(ins); err != nil {
			return err
		}
	}

	return nil
}
