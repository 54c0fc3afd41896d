// Package seed holds the embedded fallback dataset served when the remote
// spreadsheet is not configured or unreachable.
package seed

import "example.com/festivals-morocco/services/events/internal/ingest"

// Events returns the embedded seed entries. They are raw SeedEvent values,
// not normalized records: callers run them through the same mapper as
// spreadsheet rows so there is a single construction path.
func Events() []ingest.SeedEvent {
	return []ingest.SeedEvent{
		{
			ID:                   "gnaoua-2025",
			Name:                 "Festival Gnaoua et Musiques du Monde",
			EventType:            "festival",
			StartDate:            "2025-06-26",
			EndDate:              "2025-06-29",
			City:                 "Essaouira",
			Region:               "Marrakech-Safi",
			Venue:                "Place Moulay Hassan",
			Genres:               []string{"Gnawa", "World Music", "Jazz"},
			Artists:              []string{"Maalem Hamid El Kasri", "Hindi Zahra", "Oum"},
			Organizer:            "Association Yerma Gnaoua",
			OfficialWebsite:      "https://festival-gnaoua.net",
			TicketURL:            "https://festival-gnaoua.net/billetterie",
			Status:               "confirmed",
			IsVerified:           true,
			IsPinned:             true,
			CulturalSignificance: 10,
			Description:          "Annual celebration of Gnawa music and culture, bringing together Gnawa masters and international artists.",
		},
		{
			ID:                   "mawazine-2025",
			Name:                 "Mawazine Rhythms of the World",
			EventType:            "festival",
			StartDate:            "2025-06-20",
			EndDate:              "2025-06-28",
			City:                 "Rabat",
			Region:               "Rabat-Salé-Kénitra",
			Venue:                "OLM Souissi",
			Genres:               []string{"Pop", "World Music", "Hip Hop", "R&B"},
			Organizer:            "Maroc Cultures",
			OfficialWebsite:      "https://mawazine.ma",
			Status:               "announced",
			IsVerified:           true,
			IsPinned:             true,
			CulturalSignificance: 9,
			Description:          "One of the world's largest music festivals with major international headliners.",
		},
		{
			ID:                   "fes-sacred-music-2025",
			Name:                 "Fes Festival of World Sacred Music",
			EventType:            "festival",
			StartDate:            "2025-06-06",
			EndDate:              "2025-06-14",
			City:                 "Fes",
			Region:               "Fès-Meknès",
			Venue:                "Bab Al Makina",
			Genres:               []string{"Sufi", "Classical", "World Music", "Sacred"},
			Organizer:            "Fes Festival Foundation",
			OfficialWebsite:      "https://fesfestival.com",
			Status:               "announced",
			IsVerified:           true,
			IsPinned:             true,
			CulturalSignificance: 9,
			Description:          "Celebrating sacred music traditions from around the world in Morocco's oldest imperial city.",
		},
		{
			ID:                   "timitar-2025",
			Name:                 "Festival Timitar",
			EventType:            "festival",
			StartDate:            "2025-07-10",
			EndDate:              "2025-07-13",
			City:                 "Agadir",
			Region:               "Souss-Massa",
			Genres:               []string{"Amazigh", "World Music", "Folk"},
			Organizer:            "Association Timitar",
			OfficialWebsite:      "https://festivaltimitar.ma",
			Status:               "announced",
			IsVerified:           true,
			CulturalSignificance: 8,
			Description:          "Festival celebrating Amazigh (Berber) music and culture.",
		},
		{
			ID:                   "jazzablanca-2025",
			Name:                 "Jazzablanca",
			EventType:            "festival",
			StartDate:            "2025-07-03",
			EndDate:              "2025-07-05",
			City:                 "Casablanca",
			Region:               "Casablanca-Settat",
			Venue:                "Anfa Park",
			Genres:               []string{"Jazz", "Soul", "Blues", "Electronic"},
			Organizer:            "7MO",
			OfficialWebsite:      "https://jazzablanca.com",
			Status:               "announced",
			IsVerified:           true,
			CulturalSignificance: 7,
			Description:          "Casablanca's premier jazz festival.",
		},
		{
			ID:                   "l-boulevard-2025",
			Name:                 "L'Boulevard Festival",
			EventType:            "festival",
			StartDate:            "2025-09-26",
			EndDate:              "2025-09-28",
			City:                 "Casablanca",
			Region:               "Casablanca-Settat",
			Venue:                "Ancienne Médina",
			Genres:               []string{"Hip Hop", "Rock", "Electronic", "Urban"},
			Organizer:            "EAC L'Boulvard",
			OfficialWebsite:      "https://boulevard.ma",
			Status:               "announced",
			IsVerified:           true,
			CulturalSignificance: 7,
			Description:          "Casablanca's urban music festival for emerging Moroccan artists.",
		},
		{
			ID:                   "visa-for-music-2025",
			Name:                 "Visa For Music",
			EventType:            "conference",
			StartDate:            "2025-11-19",
			EndDate:              "2025-11-22",
			City:                 "Rabat",
			Region:               "Rabat-Salé-Kénitra",
			Venue:                "Various venues",
			Genres:               []string{"World Music", "African", "Electronic"},
			Organizer:            "Visa For Music",
			OfficialWebsite:      "https://visaformusic.com",
			Status:               "announced",
			IsVerified:           true,
			CulturalSignificance: 7,
			Description:          "Africa and Middle East's leading music market and showcase festival.",
		},
		{
			ID:                   "tanjazz-2025",
			Name:                 "Tanjazz Festival",
			EventType:            "festival",
			StartDate:            "2025-09-18",
			EndDate:              "2025-09-21",
			City:                 "Tangier",
			Region:               "Tanger-Tétouan-Al Hoceïma",
			Venue:                "Palais des Institutions Italiennes",
			Genres:               []string{"Jazz", "Blues", "Soul"},
			Organizer:            "Tanjazz Association",
			OfficialWebsite:      "https://tanjazz.org",
			Status:               "announced",
			IsVerified:           true,
			CulturalSignificance: 6,
			Description:          "Tangier's international jazz festival.",
		},
		{
			ID:                   "oasis-festival-2025",
			Name:                 "Oasis Festival",
			EventType:            "festival",
			StartDate:            "2025-09-12",
			EndDate:              "2025-09-14",
			City:                 "Marrakech",
			Region:               "Marrakech-Safi",
			Venue:                "The Source",
			Genres:               []string{"Electronic", "House", "Techno"},
			Organizer:            "Oasis Festival",
			OfficialWebsite:      "https://theoasisfest.com",
			Status:               "announced",
			IsVerified:           true,
			CulturalSignificance: 6,
			Description:          "Boutique electronic music festival in the Atlas Mountains.",
		},
		{
			ID:                   "atlas-electronic-2025",
			Name:                 "Atlas Electronic",
			EventType:            "festival",
			StartDate:            "2025-03-28",
			EndDate:              "2025-03-30",
			City:                 "Marrakech",
			Region:               "Marrakech-Safi",
			Venue:                "Fellah Hotel",
			Genres:               []string{"Electronic", "Ambient", "Experimental"},
			Organizer:            "Atlas Electronic",
			OfficialWebsite:      "https://atlaselectronic.ma",
			Status:               "confirmed",
			IsVerified:           true,
			CulturalSignificance: 5,
			Description:          "Electronic music gathering in the Moroccan countryside.",
		},
		{
			ID:                   "alegria-festival-2025",
			Name:                 "Alegria Festival",
			EventType:            "festival",
			StartDate:            "2025-04-25",
			EndDate:              "2025-04-27",
			City:                 "El Jadida",
			Region:               "Casablanca-Settat",
			Venue:                "Mazagan Beach Resort",
			Genres:               []string{"Electronic", "House", "Disco"},
			Organizer:            "Alegria Events",
			OfficialWebsite:      "https://alegriafestival.com",
			Status:               "announced",
			CulturalSignificance: 4,
			Description:          "Beach electronic music festival on Morocco's Atlantic coast.",
		},
		{
			ID:                   "jardin-des-arts-2025",
			Name:                 "Festival du Jardin des Arts",
			EventType:            "festival",
			StartDate:            "2025-05-15",
			EndDate:              "2025-05-18",
			City:                 "Tétouan",
			Region:               "Tanger-Tétouan-Al Hoceïma",
			Venue:                "Jardin Moulay Rachid",
			Genres:               []string{"Andalusian", "Classical", "Folk"},
			Status:               "announced",
			CulturalSignificance: 5,
			Description:          "Arts festival featuring Andalusian music traditions.",
		},
		{
			ID:                   "awaln-art-2025",
			Name:                 "Awaln'Art Festival",
			EventType:            "festival",
			StartDate:            "2025-06-12",
			EndDate:              "2025-06-15",
			City:                 "Marrakech",
			Region:               "Marrakech-Safi",
			Venue:                "Various venues",
			Genres:               []string{"World Music", "Gnawa", "Electronic"},
			Organizer:            "Awaln'Art Association",
			Status:               "announced",
			CulturalSignificance: 5,
			Description:          "Contemporary arts and music festival in Marrakech.",
		},
		{
			ID:                   "chefchaouen-jazz-2025",
			Name:                 "Jazz au Chefchaouen",
			EventType:            "festival",
			StartDate:            "2025-08-07",
			EndDate:              "2025-08-09",
			City:                 "Chefchaouen",
			Region:               "Tanger-Tétouan-Al Hoceïma",
			Venue:                "Place Outa El Hammam",
			Genres:               []string{"Jazz", "Fusion"},
			Status:               "announced",
			CulturalSignificance: 4,
			Description:          "Jazz festival in the blue-painted mountain town.",
		},
		{
			ID:                   "merzouga-music-2025",
			Name:                 "Merzouga Music Festival",
			EventType:            "festival",
			StartDate:            "2025-10-17",
			EndDate:              "2025-10-19",
			City:                 "Merzouga",
			Region:               "Drâa-Tafilalet",
			Venue:                "Erg Chebbi Dunes",
			Genres:               []string{"World Music", "Gnawa", "Desert Blues"},
			Status:               "announced",
			CulturalSignificance: 5,
			Description:          "Music performances in the Sahara desert dunes.",
		},
	}
}
