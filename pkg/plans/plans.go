package plans

// SubscriptionPlan representa um plano de assinatura do catálogo
type SubscriptionPlan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceInCents int      `json:"price_in_cents"`
	Tier         string   `json:"tier"`
	Popular      bool     `json:"popular,omitempty"`
	Features     []string `json:"features"`
}

// SubscriptionPlans é o catálogo estático de planos oferecidos
var SubscriptionPlans = []SubscriptionPlan{
	{
		ID:           "pro-plan",
		Name:         "Pro",
		Description:  "Perfect for individuals and creators",
		PriceInCents: 1999, // $19.99/mês
		Tier:         "pro",
		Features: []string{
			"Unlimited video generations",
			"HD video quality",
			"Priority processing",
			"Chat history saved",
			"Email support",
			"No watermark",
		},
	},
	{
		ID:           "team-plan",
		Name:         "Team",
		Description:  "Best for small teams and businesses",
		PriceInCents: 4999, // $49.99/mês
		Tier:         "team",
		Popular:      true,
		Features: []string{
			"Everything in Pro",
			"4K video quality",
			"Team collaboration",
			"Advanced AI models",
			"Priority support",
			"Custom branding",
			"API access",
		},
	},
	{
		ID:           "enterprise-plan",
		Name:         "Enterprise",
		Description:  "For large organizations with custom needs",
		PriceInCents: 19999, // $199.99/mês
		Tier:         "enterprise",
		Features: []string{
			"Everything in Team",
			"Unlimited team members",
			"Dedicated account manager",
			"Custom AI training",
			"SLA guarantee",
			"On-premise deployment",
			"Advanced analytics",
			"24/7 phone support",
		},
	},
}

// FindByID busca um plano pelo ID. Retorna nil quando o plano não existe.
func FindByID(id string) *SubscriptionPlan {
	for i := range SubscriptionPlans {
		if SubscriptionPlans[i].ID == id {
			return &SubscriptionPlans[i]
		}
	}
	return nil
}
