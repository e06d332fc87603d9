package names

// builtinPools returns the built-in region name tables. The returned map
// is fresh on every call so option merging never mutates shared state.
func builtinPools() map[string]Pool {
	return map[string]Pool{
		"england": {
			First: []string{
				"Harry", "Jack", "Oliver", "George", "Charlie",
				"Jacob", "Alfie", "Freddie", "Oscar", "Archie",
				"Mason", "Callum", "Lewis", "Kyle", "Reece",
			},
			Last: []string{
				"Smith", "Jones", "Taylor", "Brown", "Williams",
				"Wilson", "Johnson", "Walker", "Wright", "Robinson",
				"Thompson", "White", "Hughes", "Edwards", "Green",
			},
		},
		"spain": {
			First: []string{
				"Alejandro", "Daniel", "Pablo", "Alvaro", "Adrian",
				"David", "Diego", "Javier", "Marcos", "Sergio",
				"Iker", "Mario", "Carlos", "Ruben", "Victor",
			},
			Last: []string{
				"Garcia", "Rodriguez", "Gonzalez", "Fernandez", "Lopez",
				"Martinez", "Sanchez", "Perez", "Gomez", "Martin",
				"Jimenez", "Ruiz", "Hernandez", "Diaz", "Moreno",
			},
		},
		"germany": {
			First: []string{
				"Leon", "Lukas", "Finn", "Jonas", "Maximilian",
				"Felix", "Paul", "Luis", "Niklas", "Tim",
				"Moritz", "Jan", "Florian", "Tobias", "Erik",
			},
			Last: []string{
				"Mueller", "Schmidt", "Schneider", "Fischer", "Weber",
				"Meyer", "Wagner", "Becker", "Schulz", "Hoffmann",
				"Koch", "Bauer", "Richter", "Klein", "Wolf",
			},
		},
		"france": {
			First: []string{
				"Lucas", "Hugo", "Theo", "Nathan", "Enzo",
				"Leo", "Louis", "Mathis", "Jules", "Antoine",
				"Maxime", "Clement", "Romain", "Quentin", "Thomas",
			},
			Last: []string{
				"Martin", "Bernard", "Dubois", "Thomas", "Robert",
				"Richard", "Petit", "Durand", "Leroy", "Moreau",
				"Simon", "Laurent", "Lefebvre", "Michel", "Garcia",
			},
		},
		"italy": {
			First: []string{
				"Francesco", "Alessandro", "Lorenzo", "Andrea", "Matteo",
				"Gabriele", "Leonardo", "Riccardo", "Tommaso", "Davide",
				"Giuseppe", "Antonio", "Federico", "Marco", "Luca",
			},
			Last: []string{
				"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi",
				"Romano", "Colombo", "Ricci", "Marino", "Greco",
				"Bruno", "Gallo", "Conti", "DeLuca", "Costa",
			},
		},
		"brazil": {
			First: []string{
				"Gabriel", "Lucas", "Matheus", "Pedro", "Guilherme",
				"Rafael", "Felipe", "Bruno", "Thiago", "Vinicius",
				"Joao", "Leonardo", "Eduardo", "Caio", "Diego",
			},
			Last: []string{
				"Silva", "Santos", "Oliveira", "Souza", "Lima",
				"Pereira", "Costa", "Ferreira", "Rodrigues", "Almeida",
				"Nascimento", "Carvalho", "Araujo", "Ribeiro", "Gomes",
			},
		},
		"argentina": {
			First: []string{
				"Santiago", "Mateo", "Juan", "Matias", "Nicolas",
				"Benjamin", "Thiago", "Joaquin", "Facundo", "Agustin",
				"Lautaro", "Franco", "Bruno", "Ignacio", "Julian",
			},
			Last: []string{
				"Gonzalez", "Rodriguez", "Gomez", "Fernandez", "Lopez",
				"Diaz", "Martinez", "Perez", "Romero", "Sanchez",
				"Alvarez", "Torres", "Ruiz", "Ramirez", "Acosta",
			},
		},
		"netherlands": {
			First: []string{
				"Daan", "Sem", "Milan", "Levi", "Luuk",
				"Bram", "Jesse", "Thijs", "Ruben", "Lars",
				"Tim", "Niels", "Koen", "Stijn", "Jort",
			},
			Last: []string{
				"DeJong", "Jansen", "DeVries", "VanDenBerg", "VanDijk",
				"Bakker", "Visser", "Smit", "Meijer", "DeBoer",
				"Mulder", "DeGroot", "Bos", "Vos", "Peters",
			},
		},
		"portugal": {
			First: []string{
				"Joao", "Rodrigo", "Martim", "Afonso", "Tomas",
				"Duarte", "Tiago", "Goncalo", "Diogo", "Rafael",
				"Francisco", "Miguel", "Andre", "Bernardo", "Vasco",
			},
			Last: []string{
				"Silva", "Santos", "Ferreira", "Pereira", "Oliveira",
				"Costa", "Rodrigues", "Martins", "Jesus", "Sousa",
				"Fernandes", "Goncalves", "Gomes", "Lopes", "Marques",
			},
		},
	}
}
