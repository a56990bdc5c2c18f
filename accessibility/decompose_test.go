package accessibility

import (
	"strings"
	"testing"

	"github.com/BackofenLab/intarnago/rnasequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plfoldFixtureSeq = "uaugacugacuggcgcgcguacugacguga"

const plfoldFixture = `#unpaired probabilities
 #i$	l=1	2	3	4	5	6	7	8	9	10
1	0.9949492	NA	NA	NA	NA	NA	NA	NA	NA	NA
2	0.9949079	0.9941056	NA	NA	NA	NA	NA	NA	NA	NA
3	0.9554214	0.9518663	0.9511048	NA	NA	NA	NA	NA	NA	NA
4	0.9165814	0.9122866	0.9090283	0.9083552	NA	NA	NA	NA	NA	NA
5	0.998999	0.915609	0.9117766	0.9085215	0.9079146	NA	NA	NA	NA	NA
6	0.8549929	0.8541667	0.8448852	0.8431375	0.8398829	0.8393024	NA	NA	NA	NA
7	0.9161161	0.8446519	0.8438282	0.8348281	0.8330847	0.8313335	0.8307534	NA	NA	NA
8	0.9830043	0.9081378	0.8373899	0.8365669	0.8278368	0.8262157	0.824465	0.824227	NA	NA
9	0.997844	0.9813391	0.9065023	0.8358459	0.8350237	0.8264586	0.8260226	0.8242721	0.8241441	NA
10	0.9906155	0.9893027	0.9730023	0.8981675	0.8275292	0.8267074	0.8218168	0.8213811	0.8196307	0.8195027
11	0.9941335	0.9851103	0.9839263	0.9676888	0.8928559	0.8222774	0.8222198	0.8180557	0.817621	0.8176206
12	0.8690241	0.8654449	0.8566608	0.8554815	0.839264	0.8380446	0.8219215	0.821864	0.8177102	0.8174872
13	0.9107177	0.8531571	0.8517984	0.8431146	0.8419464	0.8257519	0.8253962	0.8198182	0.8197612	0.8156254
14	0.7755244	0.747624	0.7155972	0.7144589	0.706254	0.7052549	0.7036699	0.7033524	0.6977753	0.6977266
15	0.8058957	0.7601865	0.7326016	0.7027262	0.7016679	0.6982151	0.6972195	0.6956395	0.6954189	0.695329
16	0.02191314	0.01959841	0.01791968	0.01723728	0.01616173	0.01612733	0.01540904	0.01538624	0.01534086	0.01533351
17	0.006584845	0.004112372	0.003121421	0.002703536	0.00256851	0.002078218	0.002074677	0.00146262	0.001459626	0.001442846
18	0.06644609	0.003804626	0.002098785	0.001559709	0.001266798	0.001193299	0.001136074	0.001133916	0.0005256679	0.0005240971
19	0.111588	0.06519989	0.002731614	0.001196305	0.0006678619	0.0006216257	0.0005496343	0.0004939404	0.0004923591	0.0004805025
20	0.218612	0.1112393	0.06492555	0.002594459	0.001065674	0.0005483276	0.000508408	0.0004408385	0.0003950237	0.0003935838
21	0.9994454	0.2185816	0.1112115	0.06489999	0.002569867	0.001041783	0.0005260561	0.0004874071	0.000420591	0.0003755812
22	0.9989273	0.9985739	0.2182373	0.110926	0.06462868	0.002470349	0.0009426092	0.0004363855	0.000398409	0.0003850587
23	0.9710494	0.970038	0.9696895	0.1893656	0.1088858	0.06258917	0.002455754	0.0009280366	0.0004343271	0.0003963808
24	0.9250563	0.9249602	0.9243959	0.9240502	0.1446156	0.06419723	0.06149891	0.001366442	0.0008949269	0.0004013865
25	0.2210327	0.1460893	0.1460065	0.1454443	0.1450991	0.1446134	0.06419553	0.06149747	0.001365021	0.0008935096
26	0.004788834	0.004701346	0.004555013	0.004523588	0.004243178	0.003900484	0.003612546	0.003570138	0.0008844166	0.0008689095
27	0.001313809	0.001162996	0.001158495	0.001102602	0.001085606	0.001015911	0.0006740694	0.0004613423	0.0004217853	0.0003974838
28	0.003579508	0.001248483	0.001151334	0.001146998	0.00109294	0.001076138	0.001006977	0.0006660441	0.0004544384	0.0004200339
29	0.02706842	0.002727444	0.001208356	0.001115501	0.001111228	0.001059088	0.001043366	0.001003024	0.0006621005	0.0004513765
30	0.9980056	0.02520127	0.002719133	0.001206888	0.001114084	0.001109818	0.001057748	0.001043013	0.001002708	0.0006617864
`

func plfoldSequence(t *testing.T) rnasequence.Sequence {
	t.Helper()
	s, err := rnasequence.NewSequence("test", strings.ToUpper(plfoldFixtureSeq))
	require.NoError(t, err)
	return s
}

func TestFromStreamProbabilities(t *testing.T) {
	seq := plfoldSequence(t)
	table, err := FromStream(strings.NewReader(plfoldFixture), seq, 10, FormatUnpairedProbabilities, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 0, table.ED(29, 29))
	assert.Equal(t, 732, table.ED(20, 29))
}

func TestDecomposeByMaxEDE6(t *testing.T) {
	seq := plfoldSequence(t)
	table, err := FromStream(strings.NewReader(plfoldFixture), seq, 10, FormatAccessibilityEnergies, 1.0)
	require.NoError(t, err)

	ranges := DecomposeByMaxED(table, 8, 5, 2)
	if diff := diffRanges([]rnasequence.IndexRange{{From: 11, To: 18}, {From: 24, To: 29}}, ranges); diff != "" {
		t.Fatalf("decompose mismatch: %s", diff)
	}

	ranges1 := DecomposeByMaxED(table, 8, 5, 1)
	if diff := diffRanges([]rnasequence.IndexRange{{From: 5, To: 5}, {From: 11, To: 18}, {From: 24, To: 29}}, ranges1); diff != "" {
		t.Fatalf("decompose (minLen=1) mismatch: %s", diff)
	}

	ranges7 := DecomposeByMaxED(table, 8, 5, 7)
	if diff := diffRanges([]rnasequence.IndexRange{{From: 11, To: 18}}, ranges7); diff != "" {
		t.Fatalf("decompose (minLen=7) mismatch: %s", diff)
	}
}

func diffRanges(want, got []rnasequence.IndexRange) string {
	if len(want) != len(got) {
		return "length mismatch"
	}
	for i := range want {
		if want[i] != got[i] {
			return "element mismatch"
		}
	}
	return ""
}
