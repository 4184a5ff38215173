package crisis

import "github.com/Avyayamishra/NationCraft/internal/nation"

// DefaultEvents returns the authored crisis catalog used to seed a fresh
// database.
func DefaultEvents() []Event {
	return []Event{
		{
			Category:    "economy",
			Title:       "Auto Industry Strike",
			Description: "A major strike has broken out in the automobile industry. Workers demand higher wages and better working conditions. Production has halted at major plants.",
			Options: []Option{
				{
					Text:    "Approve higher wages immediately",
					Effects: nation.Effects{nation.StatEconomy: -10, nation.StatHappiness: 20, nation.StatStability: 5},
					Reason:  "Higher wages strain the budget but boost worker morale and loyalty. Quick resolution prevents prolonged disruption.",
				},
				{
					Text:    "Reject demands and deploy police",
					Effects: nation.Effects{nation.StatEconomy: 5, nation.StatHappiness: -15, nation.StatStability: -10},
					Reason:  "Forceful suppression saves money short-term but creates deep resentment and potential for future unrest.",
				},
				{
					Text:    "Negotiate for partial wage increase",
					Effects: nation.Effects{nation.StatEconomy: -5, nation.StatHappiness: 10, nation.StatStability: 5},
					Reason:  "Compromise shows leadership while balancing economic concerns. Both sides make concessions.",
				},
				{
					Text:    "Offer alternative benefits package",
					Effects: nation.Effects{nation.StatEconomy: -3, nation.StatHappiness: 8, nation.StatRelations: 3},
					Reason:  "Creative solutions like healthcare or training programs cost less than wages but still address worker concerns.",
				},
			},
		},
		{
			Category:    "diplomacy",
			Title:       "Border Dispute Escalation",
			Description: "A neighboring country has moved troops near your eastern border, claiming historical territorial rights. International observers are watching closely.",
			Options: []Option{
				{
					Text:    "Deploy military to the border",
					Effects: nation.Effects{nation.StatMilitaryPower: 10, nation.StatRelations: -15, nation.StatEconomy: -8},
					Reason:  "Military posturing shows strength but escalates tensions and drains resources for deployment and maintenance.",
				},
				{
					Text:    "Request UN mediation",
					Effects: nation.Effects{nation.StatRelations: 8, nation.StatStability: 5, nation.StatEconomy: -3},
					Reason:  "Diplomatic approach enhances international standing and provides neutral arbitration, though it requires funding.",
				},
				{
					Text:    "Offer territorial compromise",
					Effects: nation.Effects{nation.StatRelations: 15, nation.StatHappiness: -10, nation.StatStability: -5},
					Reason:  "Peaceful resolution improves diplomatic ties but appears weak to citizens who view it as giving up sovereign land.",
				},
				{
					Text:    "Impose targeted economic sanctions",
					Effects: nation.Effects{nation.StatEconomy: -5, nation.StatRelations: -8, nation.StatStability: 3},
					Reason:  "Economic pressure shows resolve without military action, but reduces trade and may hurt your own economy.",
				},
			},
		},
		{
			Category:    "environment",
			Title:       "Industrial Pollution Crisis",
			Description: "Several major factories have been releasing toxic chemicals into the air and water. Environmental groups are protesting, and public health concerns are rising.",
			Options: []Option{
				{
					Text:    "Immediately shut down polluting factories",
					Effects: nation.Effects{nation.StatEnvironment: 20, nation.StatEconomy: -15, nation.StatHappiness: -8},
					Reason:  "Decisive environmental action prevents health disasters but causes massive job losses and economic disruption.",
				},
				{
					Text:    "Implement gradual emission standards",
					Effects: nation.Effects{nation.StatEnvironment: 8, nation.StatEconomy: -5, nation.StatHappiness: 5},
					Reason:  "Balanced approach gives companies time to adapt while showing environmental commitment. Moderate costs for all.",
				},
				{
					Text:    "Ignore environmental concerns",
					Effects: nation.Effects{nation.StatEconomy: 5, nation.StatEnvironment: -10, nation.StatHappiness: -12, nation.StatStability: -8},
					Reason:  "Prioritizing industry over environment leads to health crises, public outrage, and long-term ecological damage.",
				},
				{
					Text:    "Invest heavily in green technology subsidies",
					Effects: nation.Effects{nation.StatEnvironment: 15, nation.StatEconomy: -10, nation.StatRelations: 8},
					Reason:  "Forward-thinking investment creates jobs in new sectors and improves international image, but requires significant upfront costs.",
				},
			},
		},
		{
			Category:    "politics",
			Title:       "Government Corruption Scandal",
			Description: "Investigative journalists have exposed a major corruption ring involving high-ranking government officials and defense contractors. The media is demanding accountability.",
			Options: []Option{
				{
					Text:    "Launch comprehensive investigation",
					Effects: nation.Effects{nation.StatStability: 15, nation.StatHappiness: 10, nation.StatEconomy: -5},
					Reason:  "Transparent accountability restores public trust and strengthens institutions, though investigations are costly and time-consuming.",
				},
				{
					Text:    "Attempt to suppress the story",
					Effects: nation.Effects{nation.StatStability: -15, nation.StatHappiness: -20, nation.StatEconomy: 5},
					Reason:  "Cover-up attempts backfire when exposed, creating deeper scandals and destroying credibility with the public.",
				},
				{
					Text:    "Quietly remove officials without fanfare",
					Effects: nation.Effects{nation.StatStability: 5, nation.StatHappiness: -5, nation.StatEconomy: 3},
					Reason:  "Minimal response addresses the immediate problem but doesn't satisfy demands for justice and transparency.",
				},
				{
					Text:    "Blame opposition and deflect",
					Effects: nation.Effects{nation.StatStability: -8, nation.StatHappiness: -10, nation.StatRelations: -5},
					Reason:  "Political deflection appears defensive and dishonest, damaging relationships with both domestic opposition and international partners.",
				},
			},
		},
		{
			Category:    "military",
			Title:       "Defense Modernization Pressure",
			Description: "Military leaders warn that neighboring countries are advancing their weapons systems. They request significant budget increases for modernization programs.",
			Options: []Option{
				{
					Text:    "Approve major defense spending increase",
					Effects: nation.Effects{nation.StatMilitaryPower: 15, nation.StatEconomy: -12, nation.StatStability: 8},
					Reason:  "Strong military deters threats and reassures citizens, but diverts funds from civilian programs and increases deficit spending.",
				},
				{
					Text:    "Maintain current defense budget",
					Effects: nation.Effects{nation.StatMilitaryPower: -5, nation.StatStability: 3, nation.StatHappiness: 5},
					Reason:  "Fiscal responsibility pleases taxpayers but may leave military outdated, potentially creating security vulnerabilities.",
				},
				{
					Text:    "Reduce defense spending for social programs",
					Effects: nation.Effects{nation.StatEconomy: 10, nation.StatMilitaryPower: -15, nation.StatStability: -8},
					Reason:  "Reallocation helps civilian needs but weakens defense capabilities and may alarm military leadership and allies.",
				},
				{
					Text:    "Seek international defense partnerships",
					Effects: nation.Effects{nation.StatMilitaryPower: 8, nation.StatRelations: -5, nation.StatEconomy: 3},
					Reason:  "Shared defense costs reduce expenses but create dependency on allies and may compromise strategic autonomy.",
				},
			},
		},
		{
			Category:    "economy",
			Title:       "Economic Recession Warning",
			Description: "Economic indicators show the country is entering a recession. Unemployment is rising, businesses are closing, and consumer confidence is at a five-year low.",
			Options: []Option{
				{
					Text:    "Launch massive stimulus package",
					Effects: nation.Effects{nation.StatEconomy: 15, nation.StatHappiness: 10, nation.StatStability: 5},
					Reason:  "Government spending jumpstarts economic activity and provides immediate relief, but increases national debt significantly.",
				},
				{
					Text:    "Implement austerity measures",
					Effects: nation.Effects{nation.StatEconomy: -5, nation.StatHappiness: -10, nation.StatStability: -5},
					Reason:  "Fiscal restraint may worsen short-term conditions but aims for long-term stability by reducing government debt burden.",
				},
				{
					Text:    "Increase taxes on wealthy individuals",
					Effects: nation.Effects{nation.StatEconomy: 8, nation.StatHappiness: -8, nation.StatStability: -3},
					Reason:  "Revenue from high earners funds programs but may discourage investment and create capital flight among the wealthy.",
				},
				{
					Text:    "Attract foreign investment with incentives",
					Effects: nation.Effects{nation.StatEconomy: 12, nation.StatRelations: -3, nation.StatStability: 3},
					Reason:  "Foreign capital creates jobs and growth but may create dependency and concerns about national economic sovereignty.",
				},
			},
		},
		{
			Category:    "social",
			Title:       "Healthcare System Crisis",
			Description: "Hospitals are overwhelmed, medical staff are burned out, and critical supplies are running short. Citizens are demanding immediate healthcare system reforms.",
			Options: []Option{
				{
					Text:    "Massively increase healthcare funding",
					Effects: nation.Effects{nation.StatHappiness: 15, nation.StatEconomy: -10, nation.StatStability: 8},
					Reason:  "Investment in healthcare saves lives and improves quality of life but requires significant budget reallocation or new taxes.",
				},
				{
					Text:    "Privatize significant portions of healthcare",
					Effects: nation.Effects{nation.StatEconomy: 8, nation.StatHappiness: -12, nation.StatStability: -5},
					Reason:  "Market solutions may improve efficiency and reduce government costs but limit access for lower-income citizens.",
				},
				{
					Text:    "Implement gradual healthcare reforms",
					Effects: nation.Effects{nation.StatHappiness: 8, nation.StatEconomy: -5, nation.StatStability: 3},
					Reason:  "Step-by-step improvements balance budget concerns with healthcare needs but may not address urgent crisis fast enough.",
				},
				{
					Text:    "Import healthcare workers and expand medical training",
					Effects: nation.Effects{nation.StatHappiness: 10, nation.StatEconomy: -8, nation.StatRelations: 5},
					Reason:  "Expanding healthcare capacity through immigration and education provides long-term solutions but requires time and investment.",
				},
			},
		},
	}
}
