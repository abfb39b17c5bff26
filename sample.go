package main

// sampleProgram exercises every statement form of the language.
const sampleProgram = `Program MyR;
vars int i; , int j, int k, int[10] arreglo, flot promedio, char Emilio, char German

function flot Prom3Num(int uno, int dos, int tres)
vars flot promedio;
{
	promedio = (uno + dos + tres) / 3;
	return (promedio);
}

main {
	i = 1;
	j = 2;
	k = 3;
	Emilio = Hola;
	German = Adios;
	Prom3Num(i, j, k);
	write(promedio);
	for i = 0 to 9 do {
		arreglo[i] = i * 2;
		Prom3Num(i, j, k);
	}
	If (promedio > 5) then {
		write(Emilio);
	} else {
		write(German);
	}
	while (k > 0 & -j < 0) do {
		read(k);
	}
	write();
}
`
