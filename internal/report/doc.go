// Package report renders analysis tallies and recommendation results to the
// console, to the JSON report files (resultados_analise.json and
// recomendacoes.json), and to PNG bar charts.
//
// File writes go through a Writer that holds an advisory lock on the output
// directory, so two runs pointed at the same directory cannot interleave
// partial files. JSON field names keep the Portuguese keys of the original
// report contract.
package report
