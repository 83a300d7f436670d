package catalog

import "context"

// SeedSummary reports what a Seed run left in the catalog.
type SeedSummary struct {
	Chapters int `json:"chapters"`
	Sections int `json:"sections"`
	Groups   int `json:"groups"`
	Acts     int `json:"acts"`
}

// Seed loads the embedded national fee schedule. It is idempotent: chapters
// and sections are upserted by their stable ids, and each group's act list is
// replaced wholesale, so re-running leaves identical counts.
func (s *Service) Seed(ctx context.Context) (*SeedSummary, error) {
	sum := &SeedSummary{}

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		for ci, ch := range feeSchedule {
			chapter := &ActChapter{ID: ch.ID, Title: ch.Title, Position: ci}
			if err := s.repo.UpsertChapter(ctx, chapter); err != nil {
				return err
			}
			sum.Chapters++

			for si, sec := range ch.Sections {
				section := &ActSection{ID: sec.ID, ChapterID: ch.ID, Title: sec.Title, Position: si}
				if err := s.repo.UpsertSection(ctx, section); err != nil {
					return err
				}
				sum.Sections++

				for _, grp := range sec.Groups {
					existing, err := s.repo.GetGroupForUpdate(ctx, sec.ID, grp.Title)
					if err == nil {
						if err := s.repo.UpdateGroupActs(ctx, existing.ID, grp.Acts); err != nil {
							return err
						}
					} else {
						if err := s.repo.CreateGroup(ctx, &ActGroup{
							SectionID: sec.ID,
							Title:     grp.Title,
							Acts:      grp.Acts,
						}); err != nil {
							return err
						}
					}
					sum.Groups++
					sum.Acts += len(grp.Acts)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sum, nil
}

func fee(v float64) *float64 { return &v }

type seedGroup struct {
	Title string
	Acts  []Act
}

type seedSection struct {
	ID     string
	Title  string
	Groups []seedGroup
}

type seedChapter struct {
	ID       string
	Title    string
	Sections []seedSection
}

// feeSchedule is the conventional tariff for dental acts (nomenclature CNAM),
// chapter "Dents et gencives" plus the isolated acts.
var feeSchedule = []seedChapter{
	{
		ID:    "isolated",
		Title: "ACTES ISOLES",
		Sections: []seedSection{
			{
				ID:    "isolated-section",
				Title: "ACTES ISOLES",
				Groups: []seedGroup{
					{Title: "", Acts: []Act{
						{Code: "DCH000010", Designation: "Anesthésie locale isolée (sans acte associé)", Cotation: "D6", Honoraire: fee(18.0)},
						{Code: "DCH000020", Designation: "Anesthésie loco-régionale (sans acte associé)", Cotation: "D10", Honoraire: fee(30.0)},
						{Code: "DCH000030", Designation: "Dent par technique intra buccale, film occlusal ou rétro-alvéolaire", Cotation: "Z8", Honoraire: fee(15.0)},
						{Code: "DCH000040", Designation: "Bilan radiologique complet par technique intrabucale (Status), quel que soit le nombre de clichés (minimum 6 clichés)", Cotation: "Z25", Honoraire: fee(45.0)},
					}},
				},
			},
		},
	},
	{
		ID:    "chapter-1",
		Title: "CHAPITRE: DENTS ET GENCIVES",
		Sections: []seedSection{
			{
				ID:    "section-1",
				Title: "SECTION I: SOINS CONSERVATEURS, OBTURATIONS DENTAIRES DÉFINITIVES",
				Groups: []seedGroup{
					{Title: "Cavité simple", Acts: []Act{
						{Code: "DCH010010", Designation: "Traitement global (l'obturation de plusieurs cavités simples sur la même face ne peut être comptée que pour une seule obturation composée intéressant deux faces)", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH010020", Designation: "Traitement global (l'obturation de plusieurs cavités simples sur la même face ne peut être comptée que pour une seule obturation composée intéressant deux faces), si dent permanente d'un enfant de moins de 14 ans", Cotation: "D18", Honoraire: fee(54.0)},
						{Code: "DCH010030", Designation: "Supplément pour technique adhésive quel que soit le nombre de faces traitées", Cotation: "D10", Honoraire: fee(30.0)},
					}},
					{Title: "Cavité composée", Acts: []Act{
						{Code: "DCH010040", Designation: "Traitement global intéressant deux faces", Cotation: "D23", Honoraire: fee(69.0)},
						{Code: "DCH010050", Designation: "Traitement global intéressant deux faces, si dent permanente d'un enfant de moins de 14 ans", Cotation: "D26", Honoraire: fee(78.0)},
						{Code: "DCH010060", Designation: "Traitement global intéressant trois faces et plus", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH010070", Designation: "Traitement global intéressant trois faces et plus, si dent permanente d'un enfant de moins de 14 ans", Cotation: "D36", Honoraire: fee(108.0)},
					}},
					{Title: "Soins de la pulpe et des canaux", Acts: []Act{
						{Code: "DCH010080", Designation: "Coiffage pulpaire pulpectomie coronaire simple et à l'exclusion de l'obturation définitive", Cotation: "D10", Honoraire: fee(30.0)},
						{Code: "DCH010090", Designation: "Pulpectomie coronaire et radiculaire avec obturation des canaux – Groupe incisivo-canin", Cotation: "D18", Honoraire: fee(54.0)},
						{Code: "DCH010100", Designation: "Pulpectomie coronaire et radiculaire avec obturation des canaux – Groupe prémolaire", Cotation: "D23", Honoraire: fee(69.0)},
						{Code: "DCH010110", Designation: "Pulpectomie coronaire et radiculaire avec obturation des canaux – Groupe molaire", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH010120", Designation: "Restauration d'une perte de substance intéressant deux faces et plus d'une dent par matériaux insérés en phase plastique avec ancrage radiculaire", Cotation: "D50", Honoraire: fee(150.0)},
					}},
				},
			},
			{
				ID:    "section-2",
				Title: "SECTION II: SOINS CHIRURGICAUX",
				Groups: []seedGroup{
					{Title: "Article 1: Extraction et traitement des lésions osseuses et gingivales", Acts: []Act{
						{Code: "DCH020010", Designation: "Résection de capuchon muqueux d'une dent de sagesse", Cotation: "D10", Honoraire: fee(30.0)},
						{Code: "DCH020020", Designation: "Incision d'abcès et drainage", Cotation: "D10", Honoraire: fee(30.0)},
					}},
					{Title: "Extraction dentaire", Acts: []Act{
						{Code: "DCH020030", Designation: "Extraction dentaire simple ... curetage alvéolaire ...", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH020040", Designation: "Extraction de plusieurs dents au cours d'une même séance : chaque dent suivante", Cotation: "D5", Honoraire: fee(15.0)},
						{Code: "DCH020050", Designation: "Majoration pour la première extraction au cours d'accidents inflammatoires", Cotation: "D6", Honoraire: fee(18.0)},
						{Code: "DCH020060", Designation: "Majoration pour chacune des suivantes", Cotation: "D3", Honoraire: fee(9.0)},
						{Code: "DCH020070", Designation: "Extraction de la ou des racines d'une dent par alvéolectomie", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH020080", Designation: "Extraction d'une dent en malposition", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH020090", Designation: "Tamponnement alvéolaire pour hémorragie post-opératoire dans une autre séance", Cotation: "D10", Honoraire: fee(30.0)},
					}},
					{Title: "Extraction chirurgicale", Acts: []Act{
						{Code: "DCH020100", Designation: "Extraction chirurgicale d'une dent enclavée", Cotation: "D40", Honoraire: fee(120.0)},
						{Code: "DCH020110", Designation: "Extraction chirurgicale d'une dent incluse", Cotation: "D60", Honoraire: fee(180.0)},
						{Code: "DCH020120", Designation: "Extraction chirurgicale d'un odontoïde", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH020130", Designation: "Extraction d'une dent en désinclusion non enclavée", Cotation: "D25", Honoraire: fee(75.0)},
						{Code: "DCH020140", Designation: "Extraction d'une dent en désinclusion en position palatine ou linguale", Cotation: "D40", Honoraire: fee(120.0)},
						{Code: "DCH020150", Designation: "Extraction d'une dent ectopique et incluse", Cotation: "D80", Honoraire: fee(240.0)},
						{Code: "DCH020160", Designation: "Germectomie", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH020180", Designation: "Extraction chirurgicale d'une dent permanente, incluse, traitement radiculaire, réimplantation, contention – Une dent", Cotation: "D100", Honoraire: fee(300.0)},
						{Code: "DCH020190", Designation: "Extraction chirurgicale ... Deux dents", Cotation: "D150", Honoraire: fee(450.0)},
						{Code: "DCH020200", Designation: "Dégagement chirurgical de la couronne d'une dent permanente incluse", Cotation: "D40", Honoraire: fee(120.0)},
						{Code: "DCH020210", Designation: "Régularisation localisée d'une crête alvéolaire", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH020220", Designation: "Régularisation étendue de la crête alvéolaire (y compris suture)", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH020230", Designation: "Régularisation de crête concernant un hémimaxillaire ou de canine à canine", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH020240", Designation: "Curetage périapical par trépanation vestibulaire avec ou sans résection apicale (traitement du canal compris)", Cotation: "D40", Honoraire: fee(120.0)},
					}},
					{Title: "Exérèse chirurgicale d'un kyste", Acts: []Act{
						{Code: "DCH020250", Designation: "Kyste de petit volume par voie alvéolaire élargie", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH020260", Designation: "Kyste étendu aux apex de deux dents nécessitant une trépanation osseuse", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH020270", Designation: "Kyste étendu à un segment important du maxillaire", Cotation: "D60", Honoraire: fee(180.0)},
						{Code: "DCH020280", Designation: "Kyste corono-dentaire", Cotation: "D40", Honoraire: fee(120.0)},
						{Code: "DCH020290", Designation: "Curetage d'un kyste par marsupialisation", Cotation: "D25", Honoraire: fee(75.0)},
					}},
					{Title: "Article 2: Chirurgie Pré-prothétique", Acts: []Act{
						{Code: "DCH020300", Designation: "Désinsertion musculaire vestibulaire partielle", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH020310", Designation: "Désinsertion musculaire étendue à tout le vestibule", Cotation: "D60", Honoraire: fee(180.0)},
						{Code: "DCH020320", Designation: "Désinsertion musculaire du plancher de la bouche avec section des myohyoïdiens", Cotation: "D80", Honoraire: fee(240.0)},
						{Code: "DCH020330", Designation: "Approfondissement d'un vestibule par greffe cutanée", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH020340", Designation: "Désépaississement d'une crête flottante ou d'une hyperplasie localisée", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH020350", Designation: "Désépaississement d'une crête flottante ou d'une hyperplasie étendue", Cotation: "D40", Honoraire: fee(120.0)},
					}},
					{Title: "Article 3: Parties molles, glandes, maxillaires, articulations et tumeurs, langue", Acts: []Act{
						{Code: "DCH020360", Designation: "Incision d'un abcès de la langue ou du plancher de la bouche par voie buccale", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH020370", Designation: "Excision et suture d'une bride fibreuse ou du frein hypertrophié", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH020380", Designation: "Incision d'un abcès ou phlegmon de la base de la langue ou du plancher de la bouche par voie sous-hyoïdienne", Cotation: "D40", Honoraire: fee(120.0)},
						{Code: "DCH020390", Designation: "Excision par voie buccale d'un kyste du plancher de la bouche", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH020400", Designation: "Injection de substance de contraste dans les glandes salivaires (cliché non compris)", Cotation: "D15", Honoraire: fee(45.0)},
					}},
					{Title: "Traitement chirurgical par voie buccale d'une lithiase salivaire", Acts: []Act{
						{Code: "DCH020410", Designation: "Ablation d'un calcul antérieur par incision muqueuse simple", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH020420", Designation: "Ablation d'un calcul postérieur par dissection complète du canal excréteur", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH020430", Designation: "Traitement chirurgical d'une lésion bénigne d'une glande salivaire autre que parotide", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH020440", Designation: "Traitement des fractures des procès alvéolaires avec conservation des dents mobiles et déplacées, traitement radiculaire non compris", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH020450", Designation: "Traitement orthopédique d'une fracture complète sans déplacement (appareillage compris)", Cotation: "D60", Honoraire: fee(180.0)},
						{Code: "DCH020460", Designation: "Curetage et ablation des séquestres pour ostéites et nécroses des maxillaires circonscrites à la région alvéolaire", Cotation: "D25", Honoraire: fee(75.0)},
						{Code: "DCH020470", Designation: "Traitement orthopédique de luxation uni ou bilatérale récente de la mandibule", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH020480", Designation: "Prélèvement en vue d'un examen de laboratoire d'une lésion intrabuccale de l'oropharynx", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH020490", Designation: "Exérèse d'une tumeur bénigne de la muqueuse buccale (épulis)", Cotation: "D25", Honoraire: fee(75.0)},
						{Code: "DCH020500", Designation: "Diathermo-coagulation d'une leucoplasie, d'un lupus ou d'une tumeur bénigne", Cotation: "D15", Honoraire: fee(45.0)},
					}},
					{Title: "Article 4: Traumatismes", Acts: []Act{
						{Code: "DCH020510", Designation: "Contention sur arc d'une dent subluxée après réduction", Cotation: "D80", Honoraire: fee(240.0)},
						{Code: "DCH020520", Designation: "Contention sur arc de deux dents subluxées ou plus, après réduction", Cotation: "D100", Honoraire: fee(300.0)},
						{Code: "DCH020530", Designation: "Contention d'une fracture alvéolodentaire du groupe incisivo-canin, après réduction", Cotation: "D120", Honoraire: fee(360.0)},
						{Code: "DCH020540", Designation: "Traitement orthopédique d'une fracture mandibulaire non déplacée (par arc mandibulaire)", Cotation: "D150", Honoraire: fee(450.0)},
						{Code: "DCH020550", Designation: "Blocage bimaxillaire sur arcs maxillaire et mandibulaire d'une fracture mandibulaire non déplacée", Cotation: "D200", Honoraire: fee(600.0)},
					}},
				},
			},
			{
				ID:    "section-3",
				Title: "SECTION III: HYGIÈNE BUCCO-DENTAIRE ET TRAITEMENT DES PARODONTOPATHIES",
				Groups: []seedGroup{
					{Title: "Actes généraux", Acts: []Act{
						{Code: "DCH030010", Designation: "Détartrage complet sus gingival (quel que soit le nombre de séances)", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH030020", Designation: "Traitement des gingivites : détartrage sus et sous gingival, curetage et surfaçage radiculaire (quatres séances maximum)", Cotation: "D25", Honoraire: fee(75.0)},
						{Code: "DCH030030", Designation: "Gingivectomie quelle que soit la technique – Partielle", Cotation: "D25", Honoraire: fee(75.0)},
						{Code: "DCH030040", Designation: "Gingivectomie étendue à une hémi arcade ou de canine à canine", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH030050", Designation: "Intervention à lambeaux de une à trois dents (curetage, surfaçage radiculaire et suture)", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH030060", Designation: "Intervention à lambeaux par dent supplémentaire", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH030070", Designation: "Intervention à lambeau et traitement d'une lésion osseuse par comblement et suture", Cotation: "D150", Honoraire: fee(450.0)},
						{Code: "DCH030080", Designation: "Greffe gingivale libre avec prélèvement du greffon et suture", Cotation: "D150", Honoraire: fee(450.0)},
						{Code: "DCH030090", Designation: "Hémi-section d'une molaire inférieure ou amputation radiculaire d'une molaire supérieure avec régularisation", Cotation: "D35", Honoraire: fee(105.0)},
						{Code: "DCH030100", Designation: "Ligature métallique dans les parodontopathies", Cotation: "D25", Honoraire: fee(75.0)},
						{Code: "DCH030110", Designation: "Attelle métallique dans les parodontopathies", Cotation: "D40", Honoraire: fee(120.0)},
						{Code: "DCH030120", Designation: "Prothèse attelle de contention quel que soit le nombre de dents ou de crochets", Cotation: "D70", Honoraire: fee(210.0)},
						{Code: "DCH030130", Designation: "Modification de l'articulé par meulage sélectif", Cotation: "D75", Honoraire: fee(225.0)},
						{Code: "DCH030140", Designation: "Frénectomie (excision du frein labial)", Cotation: "D50", Honoraire: fee(150.0)},
					}},
				},
			},
			{
				ID:    "section-4",
				Title: "SECTION IV: PÉDODONTIE - PRÉVENTION",
				Groups: []seedGroup{
					{Title: "Actes de prévention et pédodontie", Acts: []Act{
						{Code: "DCH040010", Designation: "Couronne pédodontique préformée", Cotation: "D30", Honoraire: fee(90.0)},
						{Code: "DCH040020", Designation: "Résine de scellement des puits et fissures (sealants)", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH040030", Designation: "Application topique de fluor par gouttière préfabriquée (5 séances max) – par séance", Cotation: "D10", Honoraire: fee(30.0)},
						{Code: "DCH040040", Designation: "Application topique de fluor par gouttière thermoformée", Cotation: "D35", Honoraire: fee(105.0)},
						{Code: "DCH040050", Designation: "Mainteneur d'espace fixe", Cotation: "D35", Honoraire: fee(105.0)},
						{Code: "DCH040060", Designation: "Appareillage fixe pour blocage d'éruption", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH040070", Designation: "Guide d'éruption", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH040080", Designation: "Appareil d'interception mobile (appareillage et suivi max 12 mois)", Cotation: "D200", Honoraire: fee(600.0)},
					}},
				},
			},
			{
				ID:    "section-5",
				Title: "SECTION V: ORTHOPÉDIE DENTO-FACIALE",
				Groups: []seedGroup{
					{Title: "Examens et diagnostics", Acts: []Act{
						{Code: "DCH050010", Designation: "Examen avec prise d'empreintes, diagnostic et durée probable du traitement", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH050020", Designation: "Analyse céphalométrique (en supplément)", Cotation: "D15", Honoraire: fee(45.0)},
					}},
					{Title: "Actes de prévention et de traitement", Acts: []Act{
						{Code: "DCH050030", Designation: "Traitement précoce de dysmorphose squelettique (appareillage et suivi max 15 mois) – Exemple : masque de Delaire, monobloc, etc.", Cotation: "D250", Honoraire: fee(750.0)},
						{Code: "DCH050040", Designation: "Rééducation du comportement musculaire neuro-musculaire et physiologique (série de 12 séances renouvelables) – par séance", Cotation: "D8", Honoraire: fee(24.0)},
					}},
					{Title: "Traitement orthodontique", Acts: []Act{
						{Code: "DCH050050", Designation: "Traitement orthodontique ne dépassant pas 6 mois", Cotation: "D200", Honoraire: fee(600.0)},
						{Code: "DCH050060", Designation: "Traitement orthodontique ne dépassant pas 12 mois", Cotation: "D300", Honoraire: fee(900.0)},
						{Code: "DCH050070", Designation: "Traitement des dysmorphoses importantes – Première année (max 3 années)", Cotation: "D350", Honoraire: fee(1050.0)},
						{Code: "DCH050080", Designation: "Traitement des dysmorphoses importantes – Deuxième année", Cotation: "D350", Honoraire: fee(1050.0)},
						{Code: "DCH050090", Designation: "Traitement des dysmorphoses importantes – Troisième année", Cotation: "D350", Honoraire: fee(1050.0)},
					}},
					{Title: "Contention après traitement orthodontique", Acts: []Act{
						{Code: "DCH050100", Designation: "Contention – Première année", Cotation: "D100", Honoraire: fee(300.0)},
						{Code: "DCH050110", Designation: "Contention – Deuxième année", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH050120", Designation: "Disjonction intermaxillaire rapide pour dysmorphose maxillaire en cas d'insuffisance respiratoire confirmée", Cotation: "D180", Honoraire: fee(540.0)},
					}},
					{Title: "Mise en place d'une dent permanente incluse", Acts: []Act{
						{Code: "DCH050130", Designation: "Mise en place sur l'arcade d'une dent permanente incluse – Une dent", Cotation: "D150", Honoraire: fee(450.0)},
						{Code: "DCH050140", Designation: "Mise en place sur l'arcade d'une dent permanente incluse – Deux dents", Cotation: "D200", Honoraire: fee(600.0)},
					}},
					{Title: "Orthopédie des malformations consécutives à la fente labiopalatine ou à la division palatine", Acts: []Act{
						{Code: "DCH050150", Designation: "Forfait annuel par année", Cotation: "D250", Honoraire: fee(750.0)},
						{Code: "DCH050160", Designation: "En période d'attente", Cotation: "D60", Honoraire: fee(180.0)},
						{Code: "DCH050170", Designation: "Préparation orthodontique à la chirurgie orthognatique au-delà du 17ème anniversaire – par an (max 2 ans)", Cotation: "D350", Honoraire: fee(1050.0)},
					}},
				},
			},
			{
				ID:    "section-6",
				Title: "SECTION VI: PROTHÈSE DENTAIRE",
				Groups: []seedGroup{
					{Title: "Prothèses dentaires adjointes", Acts: []Act{
						{Code: "DCH060010", Designation: "De 1 à 3 dents", Cotation: "D60", Honoraire: fee(180.0)},
						{Code: "DCH060020", Designation: "De 4 à 7 (par dent supplémentaire)", Cotation: "D5", Honoraire: fee(15.0)},
						{Code: "DCH060030", Designation: "De 8 dents", Cotation: "D100", Honoraire: fee(300.0)},
						{Code: "DCH060040", Designation: "De 9 à 11 (par dent supplémentaire)", Cotation: "D5", Honoraire: fee(15.0)},
						{Code: "DCH060050", Designation: "De 12 à 14 dents", Cotation: "D150", Honoraire: fee(450.0)},
						{Code: "DCH060060", Designation: "Appareillage complet haut et bas", Cotation: "D300", Honoraire: fee(900.0)},
						{Code: "DCH060070", Designation: "Dent prothétique contre-plaquée sur plaque base en matière plastique, supplément", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH060080", Designation: "Plaque base métallique coulée, supplément", Cotation: "D100", Honoraire: fee(300.0)},
						{Code: "DCH060090", Designation: "Dent prothétique contreplaquée ou massive soudée sur plaque base métallique, supplément", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH060100", Designation: "Réparation de fracture sur la plaque base en matière plastique", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH060110", Designation: "Dents ou crochets ajoutés ou remplacés sur appareil en matière plastique – Premier élément", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH060120", Designation: "Élément suivant sur l'appareil", Cotation: "D5", Honoraire: fee(15.0)},
						{Code: "DCH060130", Designation: "Dents ou crochets soudés, ajoutés ou remplacés sur un appareil métallique, par élément", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH060140", Designation: "Réparation de fracture de la plaque base métallique, non compris, s'il y a lieu le remontage des dents sur matière plastique", Cotation: "D20", Honoraire: fee(60.0)},
						{Code: "DCH060150", Designation: "Dents ou crochets remontés sur matière plastique après réparation de la plaque base métallique – par élément", Cotation: "D5", Honoraire: fee(15.0)},
						{Code: "DCH060160", Designation: "Rebasage", Cotation: "D25", Honoraire: fee(75.0)},
						{Code: "DCH060170", Designation: "Attachement pour prothèse (par élément)", Cotation: "D140", Honoraire: fee(420.0)},
						{Code: "DCH060180", Designation: "Remplacement de facette ou dent à tube", Cotation: "D15", Honoraire: fee(45.0)},
						{Code: "DCH060190", Designation: "Préparation dentaire pro prothétique pour plaque métallique", Cotation: "D50", Honoraire: fee(150.0)},
					}},
					{Title: "Prothèses dentaires conjointes", Acts: []Act{
						{Code: "DCH060200", Designation: "Couronne dentaire et élément de bridge", Cotation: "D55", Honoraire: fee(165.0)},
						{Code: "DCH060210", Designation: "Dent à tenon ne faisant pas intervenir une technique de coulée", Cotation: "D40", Honoraire: fee(120.0)},
						{Code: "DCH060220", Designation: "Dent à tenon radiculaire faisant intervenir une technique de coulée", Cotation: "D50", Honoraire: fee(150.0)},
						{Code: "DCH060240", Designation: "Dépose et/ou repose d'une prothèse fixe – par élément pilier", Cotation: "", Honoraire: nil},
					}},
				},
			},
			{
				ID:    "section-7",
				Title: "SECTION VII : OCCLUSODONTIE",
				Groups: []seedGroup{
					{Title: "Occlusodontie", Acts: []Act{
						{Code: "DCH070010", Designation: "Analyse occlusale", Cotation: "D120", Honoraire: fee(360.0)},
						{Code: "DCH070020", Designation: "Par soustraction", Cotation: "D70", Honoraire: fee(210.0)},
						{Code: "DCH070030", Designation: "Par addition (résine composite)", Cotation: "D100", Honoraire: fee(300.0)},
						{Code: "DCH070040", Designation: "Gouttière occlusale (traitement, mise en place et suivi)", Cotation: "D200", Honoraire: fee(600.0)},
						{Code: "DCH070050", Designation: "Réduction des subluxations et des luxations discales temporo-mandibulaires", Cotation: "D50", Honoraire: fee(150.0)},
					}},
				},
			},
			{
				ID:    "section-8",
				Title: "SECTION VIII : ÉCLAIRCISSEMENT-BLANCHIMENT",
				Groups: []seedGroup{
					{Title: "Éclaircissement - Blanchiment", Acts: []Act{
						{Code: "DCH080010", Designation: "Blanchiment par voie externe (max de 5 séances) par séance", Cotation: "D40", Honoraire: fee(120.0)},
						{Code: "DCH080020", Designation: "Blanchiment par voie interne (max de 3 séances) par dent et par séance", Cotation: "D30", Honoraire: fee(90.0)},
					}},
				},
			},
			{
				ID:    "section-9",
				Title: "SECTION IX : IMPLANTOLOGIE",
				Groups: []seedGroup{
					{Title: "Implantologie", Acts: []Act{
						{Code: "DCH090010", Designation: "Chirurgie de mise en place d'un implant (implant non compris)", Cotation: "D200", Honoraire: fee(600.0)},
						{Code: "DCH090020", Designation: "Par implant supplémentaire", Cotation: "D70", Honoraire: fee(210.0)},
						{Code: "DCH090030", Designation: "Réalisation d'une prothèse implanto-portée (pièces prothétiques non comprises) par élément", Cotation: "D100", Honoraire: fee(300.0)},
					}},
				},
			},
		},
	},
}
