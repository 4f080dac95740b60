package directory

// defaultCatalog is the built-in school catalog, keyed by region then
// city. ENT names identify the academy portal a school authenticates
// through; schools without one use direct access.
var defaultCatalog = Catalog{
	"Île-de-France": {
		"Paris": {
			{Name: "Lycée Louis-le-Grand", URL: "https://0750652k.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Henri-IV", URL: "https://0750653l.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Condorcet", URL: "https://0750654m.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Janson de Sailly", URL: "https://0750655n.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Charlemagne", URL: "https://0750657q.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Voltaire", URL: "https://0750658r.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Saint-Louis", URL: "https://0750659s.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Montaigne", URL: "https://0750660t.index-education.net/pronote/eleve.html"},
		},
		"Versailles": {
			{Name: "Lycée Hoche", URL: "https://0780073z.index-education.net/pronote/eleve.html"},
			{Name: "Lycée La Bruyère", URL: "https://0780074a.index-education.net/pronote/eleve.html"},
		},
		"Nanterre": {
			{Name: "Lycée Joliot-Curie", URL: "https://0920138t.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Paul Langevin", URL: "https://0920139u.index-education.net/pronote/eleve.html"},
		},
		"Créteil": {
			{Name: "Lycée Léon Blum", URL: "https://0940118b.index-education.net/pronote/eleve.html"},
			{Name: "Lycée Marcel Pagnol", URL: "https://0940119c.index-education.net/pronote/eleve.html"},
		},
	},
	"Auvergne-Rhône-Alpes": {
		"Lyon": {
			{Name: "Lycée du Parc", URL: "https://0690032j.index-education.net/pronote/eleve.html", ENT: "ac_lyon"},
			{Name: "Lycée Ampère", URL: "https://0690033k.index-education.net/pronote/eleve.html", ENT: "ac_lyon"},
			{Name: "Lycée Édouard Herriot", URL: "https://0690034l.index-education.net/pronote/eleve.html", ENT: "ac_lyon"},
		},
		"Grenoble": {
			{Name: "Lycée Champollion", URL: "https://0380021v.index-education.net/pronote/eleve.html", ENT: "ac_grenoble"},
			{Name: "Lycée Stendhal", URL: "https://0380022w.index-education.net/pronote/eleve.html", ENT: "ac_grenoble"},
		},
		"Clermont-Ferrand": {
			{Name: "Lycée Blaise Pascal", URL: "https://0630023x.index-education.net/pronote/eleve.html", ENT: "ac_clermont"},
		},
	},
	"Bretagne": {
		"Rennes": {
			{Name: "Lycée Chateaubriand", URL: "https://0350023c.index-education.net/pronote/eleve.html", ENT: "ac_rennes"},
			{Name: "Lycée Émile Zola", URL: "https://0350024d.index-education.net/pronote/eleve.html", ENT: "ac_rennes"},
		},
		"Brest": {
			{Name: "Lycée de l'Iroise", URL: "https://0290021s.index-education.net/pronote/eleve.html", ENT: "ac_rennes"},
			{Name: "Lycée Kérichen", URL: "https://0290022t.index-education.net/pronote/eleve.html", ENT: "ac_rennes"},
		},
	},
	"Nouvelle-Aquitaine": {
		"Bordeaux": {
			{Name: "Lycée Montaigne", URL: "https://0330023g.index-education.net/pronote/eleve.html", ENT: "ac_bordeaux"},
		},
		"Poitiers": {
			{Name: "Lycée Camille Guérin", URL: "https://0860009h.index-education.net/pronote/eleve.html", ENT: "ac_poitiers"},
		},
	},
	"Occitanie": {
		"Toulouse": {
			{Name: "Lycée Pierre de Fermat", URL: "https://0310047u.index-education.net/pronote/eleve.html", ENT: "ac_toulouse"},
			{Name: "Lycée Saint-Sernin", URL: "https://0310048v.index-education.net/pronote/eleve.html", ENT: "ac_toulouse"},
		},
		"Montpellier": {
			{Name: "Lycée Joffre", URL: "https://0340038x.index-education.net/pronote/eleve.html", ENT: "ac_montpellier"},
		},
	},
	"Provence-Alpes-Côte d'Azur": {
		"Marseille": {
			{Name: "Lycée Thiers", URL: "https://0130040z.index-education.net/pronote/eleve.html", ENT: "ac_aix_marseille"},
		},
		"Nice": {
			{Name: "Lycée Masséna", URL: "https://0060030c.index-education.net/pronote/eleve.html", ENT: "ac_nice"},
		},
	},
	"Hauts-de-France": {
		"Lille": {
			{Name: "Lycée Faidherbe", URL: "https://0590042c.index-education.net/pronote/eleve.html", ENT: "ac_lille"},
		},
	},
}
