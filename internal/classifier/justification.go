package classifier

import "github.com/MikeSquared-Agency/VendorEval/internal/scoring"

// JustificationUnavailable is returned for a kind/rating pair outside the table.
const JustificationUnavailable = "No disponible"

var justifications = map[Kind][5]string{
	KindResponseTime: {
		"El tiempo de respuesta supera el 150% del SLA acordado",
		"El tiempo de respuesta está entre el 101% y el 150% del SLA",
		"El tiempo de respuesta está entre el 90% y el 100% del SLA",
		"El tiempo de respuesta está entre el 70% y el 89% del SLA",
		"El tiempo de respuesta es inferior al 70% del SLA",
	},
	KindUptime: {
		"Disponibilidad inferior al 98%",
		"Disponibilidad entre 98% y 98.9%",
		"Disponibilidad entre 99% y 99.5%",
		"Disponibilidad entre 99.6% y 99.8%",
		"Disponibilidad superior al 99.8%",
	},
	KindTicketsResolved: {
		"Menos del 60% de los tickets resueltos",
		"Entre el 60% y el 74% de los tickets resueltos",
		"Entre el 75% y el 84% de los tickets resueltos",
		"Entre el 85% y el 94% de los tickets resueltos",
		"95% o más de los tickets resueltos",
	},
	KindDeliverables: {
		"Más de 10 días de retraso",
		"Entre 6 y 10 días de retraso",
		"Entre 3 y 5 días de retraso",
		"Entre 1 y 2 días de retraso",
		"Entregado en fecha o de forma anticipada",
	},
	KindProblemResolution: {
		"El tiempo de resolución supera el 150% del promedio acordado",
		"El tiempo de resolución está entre el 120% y el 150% del promedio",
		"El tiempo de resolución está entre el 100% y el 119% del promedio",
		"El tiempo de resolución está entre el 80% y el 99% del promedio",
		"El tiempo de resolución es inferior al 80% del promedio",
	},
	KindReopenRate: {
		"Más del 30% de los tickets resueltos fueron reabiertos",
		"Entre el 21% y el 30% de los tickets fueron reabiertos",
		"Entre el 11% y el 20% de los tickets fueron reabiertos",
		"Entre el 6% y el 10% de los tickets fueron reabiertos",
		"5% o menos de los tickets fueron reabiertos",
	},
}

// Justification returns the fixed explanation for a rating of the given kind.
func Justification(kind Kind, r scoring.Rating) string {
	row, ok := justifications[kind]
	if !ok || !r.Valid() {
		return JustificationUnavailable
	}
	return row[r-1]
}
