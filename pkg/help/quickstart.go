package help

// QuickStart is shown as the description in --help.
const QuickStart = `Tokenizes every *.html file directly inside <input-directory> and writes
into <output-directory>:

  consolidated_alphabetical.txt   "<word>: <count>" lines sorted by word
  consolidated_frequency.txt      the same lines sorted by count, highest first
  timing_<run-id>.txt             total execution time in seconds

Tokens are whitespace-delimited fields with every non-alphanumeric ASCII
character removed. Markup is not parsed, so "<p>Hello," counts as "pHello".

Examples:
  wordfreq ./pages ./results
  wordfreq --run-id a5 ./pages ./results
  wordfreq --summary --top 50 ./pages ./results
  wordfreq --sqlite runs.db ./pages ./results
`
