package sat

import "math/rand"

// GenerateInstance builds a random CNF over the given number of variables,
// for cross-checking solver backends.
func GenerateInstance(variables, clauses int) [][]Literal {
	instance := make([][]Literal, clauses)

	for i := 0; i < clauses; i++ {
		instance[i] = make([]Literal, 0, variables)
		for j := 0; j < variables; j++ {
			if rand.Float32() < 0.5 {
				var sign Literal = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				instance[i] = append(instance[i], sign*Literal(1+j))
			}
		}

		if len(instance[i]) == 0 {
			var sign Literal = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			instance[i] = append(instance[i], sign*Literal(1+rand.Intn(variables)))
		}
	}

	return instance
}

// AssertSolution checks that the solver's current model satisfies every
// clause of the instance.
func AssertSolution(instance [][]Literal, s Solver) bool {
	for _, clause := range instance {
		satisfied := false
		for _, literal := range clause {
			if s.ModelValue(literal) == True {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
