package translator

import "quantumtranslator/internal/models"

// Template holds the fixed response text for one category.
type Template struct {
	Classical string
	Quantum   string
	Speedup   string
}

// templates is indexed by models.Category.Index.
var templates = func() (t [models.NumCategories]Template) {
	for c, tmpl := range map[models.Category]Template{
		models.General: {
			Classical: "This problem can be solved using traditional computational methods with standard algorithms and data structures.",
			Quantum:   "Analyze if the problem involves: (1) searching large spaces, (2) optimization with many constraints, (3) simulation of quantum systems, or (4) number theory problems. If so, quantum approaches may help. Otherwise, classical methods may be more efficient.",
			Speedup:   "Estimated speedup: 2-4x depending on problem structure",
		},
		models.Optimization: {
			Classical: "This is a combinatorial optimization problem. Classically, you would test different combinations systematically or use heuristics like genetic algorithms or simulated annealing. For large problem spaces, this becomes exponentially slow.",
			Quantum:   "Reformulate as a Quadratic Unconstrained Binary Optimization (QUBO) problem. Use quantum annealing or QAOA (Quantum Approximate Optimization Algorithm) to explore the solution space. Encode constraints in the cost function and let quantum superposition evaluate multiple solutions simultaneously.",
			Speedup:   "Estimated speedup: 10-100x for problems with 100+ variables",
		},
		models.Search: {
			Classical: "Classical search algorithms iterate through possibilities one by one or use divide-and-conquer strategies. For unsorted databases, you'd need O(N) operations on average.",
			Quantum:   "Apply Grover's Algorithm to search unsorted databases. Encode search criteria into an oracle function that marks the target state. Amplitude amplification increases probability of measuring the correct answer.",
			Speedup:   "Estimated speedup: 2-10x (quadratic speedup) - searching N items takes √N quantum operations",
		},
		models.Simulation: {
			Classical: "Simulating quantum systems classically requires exponential resources. Each additional quantum particle doubles the state space complexity.",
			Quantum:   "Use quantum computers to directly simulate quantum systems. Map physical qubits to simulated qubits, apply Hamiltonian evolution operators, and measure observables directly.",
			Speedup:   "Estimated speedup: 100-1000x for quantum chemistry and materials science problems",
		},
		models.Cryptography: {
			Classical: "Current encryption relies on the difficulty of factoring large numbers (RSA) or discrete logarithm problems. Classical computers would take millions of years to break 2048-bit RSA.",
			Quantum:   "Implement Shor's Algorithm to factor large numbers efficiently. Use quantum Fourier transform and period-finding to determine factors in polynomial time.",
			Speedup:   "Estimated speedup: Exponential (breaks RSA) encryption with sufficient qubits",
		},
	} {
		t[c.Index()] = tmpl
	}
	return t
}()

// Lookup returns the template for a category.
func Lookup(c models.Category) Template {
	return templates[c.Index()]
}
