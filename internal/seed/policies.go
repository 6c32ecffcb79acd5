// Package seed holds the embedded policy digest loaded on first startup.
package seed

import (
	"time"

	"github.com/collectivevoice/backend/internal/models"
)

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// Policies returns the policy digest entries. IDs are stable slugs so user
// follow lists survive a wiped and re-seeded collection.
func Policies() []models.Policy {
	return []models.Policy{
		{
			ID:          "pol_001",
			Title:       "National Deep Tech Startup Policy (NDTSP) 2023",
			Summary:     "A policy framework to stimulate innovation in deep technology sectors, providing support for R&D, intellectual property creation, and funding for startups working on cutting-edge technologies like AI, space tech, and quantum computing.",
			Source:      "Ministry of Science and Technology",
			Category:    "Technology & Innovation",
			PublishedAt: ts("2023-07-31T10:00:00Z"),
		},
		{
			ID:          "pol_002",
			Title:       "PM Vishwakarma Scheme",
			Summary:     "A central sector scheme to support traditional artisans and craftspeople of rural and urban India. It provides financial assistance, skill training, and marketing support to preserve and promote traditional trades.",
			Source:      "Ministry of Micro, Small & Medium Enterprises",
			Category:    "Social Welfare & Health",
			PublishedAt: ts("2023-09-17T09:00:00Z"),
		},
		{
			ID:          "pol_003",
			Title:       "Green Hydrogen Mission",
			Summary:     "A strategic initiative to make India a global hub for the production, utilization, and export of Green Hydrogen and its derivatives. The mission aims to decarbonize major sectors of the economy.",
			Source:      "Ministry of New and Renewable Energy",
			Category:    "Infrastructure & Energy",
			PublishedAt: ts("2023-01-04T11:30:00Z"),
		},
		{
			ID:          "pol_004",
			Title:       "Digital Personal Data Protection Act 2023",
			Summary:     "An act to provide for the processing of digital personal data in a manner that recognizes both the right of individuals to protect their personal data and the need to process such personal data for lawful purposes.",
			Source:      "Ministry of Electronics and Information Technology",
			Category:    "Law & Governance",
			PublishedAt: ts("2023-08-11T14:00:00Z"),
		},
		{
			ID:          "pol_005",
			Title:       "PM e-Bus Sewa",
			Summary:     "A scheme to augment city bus operations by deploying 10,000 electric buses on a PPP model. It aims to improve urban mobility and reduce pollution in cities.",
			Source:      "Ministry of Housing and Urban Affairs",
			Category:    "Infrastructure & Energy",
			PublishedAt: ts("2023-08-16T10:00:00Z"),
		},
		{
			ID:          "pol_006",
			Title:       "Mera Bill Mera Adhikaar Scheme",
			Summary:     "A GST invoice incentive scheme which encourages consumers to demand invoices for their purchases, fostering a culture of tax compliance and transparency.",
			Source:      "Ministry of Finance",
			Category:    "Economy & Finance",
			PublishedAt: ts("2023-09-01T09:00:00Z"),
		},
		{
			ID:          "pol_007",
			Title:       "Amrit Bharat Station Scheme",
			Summary:     "A long-term vision scheme for the ongoing development of railway stations to establish them as city centers with modern amenities and better connectivity.",
			Source:      "Ministry of Railways",
			Category:    "Infrastructure & Energy",
			PublishedAt: ts("2023-08-06T11:00:00Z"),
		},
		{
			ID:          "pol_008",
			Title:       "National Quantum Mission",
			Summary:     "Targeting scientific and industrial R&D in quantum technology, this mission aims to nurture and scale up scientific and industrial R&D for quantum technologies.",
			Source:      "Department of Science & Technology",
			Category:    "Technology & Innovation",
			PublishedAt: ts("2023-04-19T13:00:00Z"),
		},
		{
			ID:          "pol_009",
			Title:       "Mahila Samman Savings Certificate",
			Summary:     "A one-time small savings scheme for women and girls available for a two-year period. It offers a fixed interest rate and is designed to encourage financial independence.",
			Source:      "Ministry of Finance",
			Category:    "Economy & Finance",
			PublishedAt: ts("2023-04-01T10:00:00Z"),
		},
		{
			ID:          "pol_010",
			Title:       "Pradhan Mantri PVTG Development Mission",
			Summary:     "A mission to improve the socio-economic conditions of Particularly Vulnerable Tribal Groups (PVTGs) by providing basic amenities like safe housing, clean drinking water, and sanitation.",
			Source:      "Ministry of Tribal Affairs",
			Category:    "Social Welfare & Health",
			PublishedAt: ts("2023-02-01T11:00:00Z"),
		},
		{
			ID:          "pol_011",
			Title:       "Bio-Energy Programme",
			Summary:     "This programme promotes the recovery of energy from biomass, including agricultural residue like paddy straw, helping to reduce air pollution and create a circular economy.",
			Source:      "Ministry of New and Renewable Energy",
			Category:    "Environment",
			PublishedAt: ts("2022-11-02T10:00:00Z"),
		},
		{
			ID:          "pol_012",
			Title:       "Ayushman Bharat Digital Mission (ABDM)",
			Summary:     "Aims to develop the backbone necessary to support the integrated digital health infrastructure of the country. It will bridge the existing gap amongst different stakeholders of the Healthcare ecosystem.",
			Source:      "Ministry of Health and Family Welfare",
			Category:    "Social Welfare & Health",
			PublishedAt: ts("2021-09-27T09:00:00Z"),
		},
		{
			ID:          "pol_013",
			Title:       "PM GatiShakti National Master Plan",
			Summary:     "A digital platform to bring 16 Ministries including Railways and Roadways together for integrated planning and coordinated implementation of infrastructure connectivity projects.",
			Source:      "Ministry of Commerce and Industry",
			Category:    "Infrastructure & Energy",
			PublishedAt: ts("2021-10-13T10:30:00Z"),
		},
		{
			ID:          "pol_014",
			Title:       "Production Linked Incentive (PLI) Scheme for IT Hardware",
			Summary:     "Provides incentives for manufacturing of Laptops, Tablets, All-in-One PCs, Servers and Ultra Small Form Factor (USFF) devices in India to boost domestic manufacturing.",
			Source:      "Ministry of Electronics and Information Technology",
			Category:    "Technology & Innovation",
			PublishedAt: ts("2023-05-17T12:00:00Z"),
		},
		{
			ID:          "pol_015",
			Title:       "Mission LiFE (Lifestyle for Environment)",
			Summary:     "A global mass movement to nudge individual and community action to protect and preserve the environment, emphasizing mindful and deliberate utilization instead of mindless and destructive consumption.",
			Source:      "NITI Aayog",
			Category:    "Environment",
			PublishedAt: ts("2022-10-20T11:00:00Z"),
		},
		{
			ID:          "pol_016",
			Title:       "National Logistics Policy (NLP)",
			Summary:     "A comprehensive policy framework to reduce the cost of logistics in India to be comparable to global benchmarks by 2030 and to improve the Logistics Performance Index ranking.",
			Source:      "Ministry of Commerce and Industry",
			Category:    "Economy & Finance",
			PublishedAt: ts("2022-09-17T10:00:00Z"),
		},
		{
			ID:          "pol_017",
			Title:       "Agnipath Scheme",
			Summary:     "A recruitment scheme for Indian youth to serve in the Armed Forces. The scheme provides an opportunity for youth to serve in the regular cadre of the Armed Forces for a period of four years.",
			Source:      "Ministry of Defence",
			Category:    "Defence",
			PublishedAt: ts("2022-06-14T12:00:00Z"),
		},
		{
			ID:          "pol_018",
			Title:       "PM-SHRI Schools (PM ScHools for Rising India)",
			Summary:     "A new centrally sponsored scheme for setting up of more than 14,500 PM-SHRI Schools which will showcase the implementation of the National Education Policy 2020.",
			Source:      "Ministry of Education",
			Category:    "Social Welfare & Health",
			PublishedAt: ts("2022-09-07T10:00:00Z"),
		},
		{
			ID:          "pol_019",
			Title:       "Namaste Scheme",
			Summary:     "National Action for Mechanised Sanitation Ecosystem (NAMASTE) aims to achieve zero fatalities in sanitation work in India and prevent manual scavenging.",
			Source:      "Ministry of Social Justice and Empowerment",
			Category:    "Social Welfare & Health",
			PublishedAt: ts("2022-08-17T11:00:00Z"),
		},
		{
			ID:          "pol_020",
			Title:       "One Nation One Fertiliser",
			Summary:     "Under the \"Pradhan Mantri Bhartiya Jan Urvarak Pariyojana\", all fertiliser companies must market all subsidised fertilisers under a single brand \"Bharat\" to standardize quality and reduce costs.",
			Source:      "Ministry of Chemicals and Fertilizers",
			Category:    "Agriculture & Rural Dev",
			PublishedAt: ts("2022-10-17T10:00:00Z"),
		},
		{
			ID:          "pol_021",
			Title:       "Semicon India Programme",
			Summary:     "A comprehensive program with an outlay of INR 76,000 crore for the development of a sustainable semiconductor and display ecosystem in the country.",
			Source:      "Ministry of Electronics and Information Technology",
			Category:    "Technology & Innovation",
			PublishedAt: ts("2021-12-15T14:00:00Z"),
		},
		{
			ID:          "pol_022",
			Title:       "RAMP (Raising and Accelerating MSME Performance)",
			Summary:     "A World Bank assisted Central Sector Scheme, supporting various Ministry of MSME programmes to improve access to market and credit, and strengthen institutions.",
			Source:      "Ministry of Micro, Small & Medium Enterprises",
			Category:    "Economy & Finance",
			PublishedAt: ts("2022-03-30T10:00:00Z"),
		},
		{
			ID:          "pol_023",
			Title:       "PM MITRA Parks Scheme",
			Summary:     "Setting up of 7 PM Mega Integrated Textile Regions and Apparel (PM MITRA) Parks to make the Indian textile industry globally competitive and create employment.",
			Source:      "Ministry of Textiles",
			Category:    "Economy & Finance",
			PublishedAt: ts("2021-10-06T11:00:00Z"),
		},
		{
			ID:          "pol_024",
			Title:       "Deep Ocean Mission",
			Summary:     "A mission mode project to explore deep ocean for resources and develop deep sea technologies for sustainable use of ocean resources.",
			Source:      "Ministry of Earth Sciences",
			Category:    "Technology & Innovation",
			PublishedAt: ts("2021-06-16T12:00:00Z"),
		},
		{
			ID:          "pol_025",
			Title:       "National Monetisation Pipeline (NMP)",
			Summary:     "Lists out the government's infrastructure assets to be sold, over the next four years, to raise funds for new infrastructure projects.",
			Source:      "NITI Aayog",
			Category:    "Economy & Finance",
			PublishedAt: ts("2021-08-23T10:00:00Z"),
		},
		{
			ID:          "pol_026",
			Title:       "e-RUPI Digital Payment Solution",
			Summary:     "A cashless and contactless instrument for digital payment. It is a QR code or SMS string-based e-Voucher, which is delivered to the mobile of the beneficiaries.",
			Source:      "Department of Financial Services",
			Category:    "Economy & Finance",
			PublishedAt: ts("2021-08-02T11:00:00Z"),
		},
		{
			ID:          "pol_027",
			Title:       "Revamped Distribution Sector Scheme (RDSS)",
			Summary:     "A reforms-based and results-linked scheme to improve the operational efficiencies and financial sustainability of State DISCOMs and Power Departments.",
			Source:      "Ministry of Power",
			Category:    "Infrastructure & Energy",
			PublishedAt: ts("2021-06-30T10:00:00Z"),
		},
		{
			ID:          "pol_028",
			Title:       "PM Ayushman Bharat Health Infrastructure Mission",
			Summary:     "One of the largest pan-India schemes for strengthening healthcare infrastructure and filling critical gaps in public health infrastructure.",
			Source:      "Ministry of Health and Family Welfare",
			Category:    "Social Welfare & Health",
			PublishedAt: ts("2021-10-25T11:00:00Z"),
		},
		{
			ID:          "pol_029",
			Title:       "Drone Shakti Scheme",
			Summary:     "Promotes drones as a service through startups. It aims to facilitate the growth of the drone industry in India and use drones for advanced applications.",
			Source:      "Ministry of Civil Aviation",
			Category:    "Technology & Innovation",
			PublishedAt: ts("2022-02-01T12:00:00Z"),
		},
		{
			ID:          "pol_030",
			Title:       "Svamitva Scheme",
			Summary:     "Survey of Villages and Mapping with Improvised Technology in Village Areas. It aims to provide an integrated property validation solution for rural India.",
			Source:      "Ministry of Panchayati Raj",
			Category:    "Agriculture & Rural Dev",
			PublishedAt: ts("2021-04-24T10:00:00Z"),
		},
		{
			ID:          "vjcet_001",
			Title:       "Code of Ethics & Conduct",
			Summary:     "A comprehensive framework outlining the values, principles, and standards of behavior expected from all members of the VJCET community, including students, staff, and leadership. It emphasizes integrity, honesty, and accountability in all academic and administrative matters.",
			Source:      "VJCET Administration",
			Category:    "Conduct & Ethics",
			PublishedAt: ts("2023-06-15T09:00:00Z"),
		},
		{
			ID:          "vjcet_002",
			Title:       "Equal Opportunity Policy",
			Summary:     "VJCET is committed to providing equal opportunities to all students and staff. The Equal Opportunity Cell ensures that disadvantaged groups are not discriminated against based on disability, social status, or other factors, promoting a diverse and inclusive campus environment.",
			Source:      "Equal Opportunity Cell",
			Category:    "Social Welfare",
			PublishedAt: ts("2022-08-20T10:30:00Z"),
		},
		{
			ID:          "vjcet_003",
			Title:       "B.Tech Admission Policy (Management Quota)",
			Summary:     "Details the allocation of 50% of seats under the management quota. 35% are allotted based on merit (10 open, 11 Christian quota) and 15% are reserved for NRIs. Selection strictly follows the merit list based on entrance examination scores.",
			Source:      "Admission Office",
			Category:    "Admissions",
			PublishedAt: ts("2024-01-10T11:00:00Z"),
		},
		{
			ID:          "vjcet_004",
			Title:       "Campus Placement Policy",
			Summary:     "Guidelines for final year students regarding campus recruitment. Students placed in a core company are restricted from attending further interviews to ensure fair opportunities for all. The policy also bars companies that charge fees for recruitment.",
			Source:      "Placement & Training Cell",
			Category:    "Placement & Career",
			PublishedAt: ts("2023-09-05T14:00:00Z"),
		},
		{
			ID:          "vjcet_005",
			Title:       "Anti-Ragging Policy",
			Summary:     "VJCET maintains a zero-tolerance policy towards ragging. Strict disciplinary actions, including suspension and legal proceedings, will be taken against any student found guilty of ragging, in accordance with UGC regulations and state laws.",
			Source:      "Anti-Ragging Committee",
			Category:    "Conduct & Ethics",
			PublishedAt: ts("2023-07-01T09:30:00Z"),
		},
		{
			ID:          "vjcet_006",
			Title:       "Green Campus Initiative",
			Summary:     "Policies promoting environmental sustainability on campus, including waste management, energy conservation, rainwater harvesting, and maintaining a plastic-free campus environment.",
			Source:      "Green Club",
			Category:    "Environment",
			PublishedAt: ts("2022-11-15T13:00:00Z"),
		},
		{
			ID:          "vjcet_007",
			Title:       "Research & Consultancy Policy",
			Summary:     "Encourages faculty and students to undertake research projects and consultancy work. The policy outlines the incentives, revenue sharing models, and support provided by the institution for intellectual property creation.",
			Source:      "Research Dean",
			Category:    "Academic & Research",
			PublishedAt: ts("2021-05-25T10:00:00Z"),
		},
		{
			ID:          "vjcet_008",
			Title:       "Student Grievance Redressal",
			Summary:     "A transparent mechanism for students to report grievances regarding academic or non-academic matters. The Grievance Redressal Committee ensures timely and fair resolution of complaints.",
			Source:      "Student Affairs",
			Category:    "Student Support",
			PublishedAt: ts("2022-03-10T15:00:00Z"),
		},
	}
}
