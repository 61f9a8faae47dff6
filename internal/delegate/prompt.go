package delegate

const promptTemplate = `
You are a Quantum Translator. 
Translate the user’s problem into:
1) Classical description (short)
2) Quantum-friendly formulation (QUBO/Ising/etc)
3) Theoretical speedup (realistic)
4) ASCII quantum circuit preview (small, <= 4 qubits)
5) Routing recommendation (good fit / maybe / not fit)

Return strict JSON fields:
{
  "classical_description": "...",
  "quantum_formulation": "...",
  "speedup": "...",
  "routing": "...",
  "circuit": "..."
}

User problem:
`

// BuildPrompt embeds text verbatim at the end of the fixed instruction prompt.
func BuildPrompt(text string) string {
	return promptTemplate + text + "\n"
}
